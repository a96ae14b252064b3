package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"

	"github.com/tmpim/rascii/internal/log"
)

const description = `rascii converts images (PNG, JPEG, GIF, BMP, TIFF, WebP) into ASCII art
for display on a terminal.

The image is split into columns x rows tiles. The outer ring of tiles is
dropped, so the output has columns-2 characters per line and rows-2 lines.`

// CLI is the root command.
type CLI struct {
	Log struct {
		Level string `help:"Log level: debug, info, warn, error." default:"info" env:"RASCII_LOG_LEVEL"`
		File  string `help:"Also write logs to this file." type:"path" env:"RASCII_LOG_FILE"`
	} `embed:"" prefix:"log."`
	Config string `help:"Configuration file (YAML or TOML)." type:"path" env:"RASCII_CONFIG"`

	Convert ConvertCmd `cmd:"" default:"withargs" help:"Print images as ASCII art."`
	View    ViewCmd    `cmd:"" help:"Show an image as ASCII art full screen."`
	Serve   ServeCmd   `cmd:"" help:"Serve conversions over HTTP and websockets."`
}

func main() {
	var cli CLI
	yamlPaths, tomlPaths := configPaths(findUserConfig(os.Args[1:]))

	ctx := kong.Parse(&cli,
		kong.Name("rascii"),
		kong.Description(description),
		kong.UsageOnError(),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)

	logger, closers, err := log.Setup(cli.Log.Level, cli.Log.File)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to set up logger:", err)
		os.Exit(2)
	}
	defer func() {
		for _, c := range closers {
			_ = c.Close()
		}
	}()

	ctx.Bind(logger)
	ctx.FatalIfErrorf(ctx.Run())
}

func findUserConfig(args []string) string {
	for i, a := range args {
		if strings.HasPrefix(a, "--config=") {
			return a[len("--config="):]
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return os.Getenv("RASCII_CONFIG")
}

// configPaths returns the YAML and TOML files to load, lowest priority
// first. A user supplied file goes to the loader matching its extension.
func configPaths(user string) (yamlPaths, tomlPaths []string) {
	if dir, err := os.UserConfigDir(); err == nil {
		base := filepath.Join(dir, "rascii", "config")
		yamlPaths = append(yamlPaths, base+".yaml", base+".yml")
		tomlPaths = append(tomlPaths, base+".toml")
	}

	switch strings.ToLower(filepath.Ext(user)) {
	case "":
	case ".toml":
		tomlPaths = append(tomlPaths, user)
	default:
		yamlPaths = append(yamlPaths, user)
	}

	return yamlPaths, tomlPaths
}
