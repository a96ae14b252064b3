// Package server exposes image conversion over HTTP and websockets.
package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"

	"github.com/tmpim/rascii"
	"github.com/tmpim/rascii/imageio"
	"github.com/tmpim/rascii/prepare"
	"github.com/tmpim/rascii/termcolor"
)

// DefaultMaxBodyBytes is the largest image accepted when Options leaves
// MaxBodyBytes unset.
const DefaultMaxBodyBytes = 16 << 20

var upgrader = websocket.Upgrader{
	HandshakeTimeout: 5 * time.Second,
}

// Options configures a Server.
type Options struct {
	// Defaults is used for every parameter missing from a request.
	Defaults rascii.Config
	Mode     termcolor.Mode
	// Prepare is applied to every image before conversion.
	Prepare      prepare.Options
	MaxBodyBytes int64
	Logger       *slog.Logger
}

// Server converts uploaded images.
type Server struct {
	echo *echo.Echo
	opts Options
	log  *slog.Logger
}

// New returns a server with its routes registered.
func New(opts Options) *Server {
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	s := &Server{
		echo: echo.New(),
		opts: opts,
		log:  opts.Logger,
	}

	s.echo.HideBanner = true
	s.echo.Use(middleware.Logger())

	api := s.echo.Group("/api")
	api.POST("/convert", s.handleConvert)
	api.GET("/ws", s.handleWebsocket)

	return s
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start listens on addr until Shutdown is called.
func (s *Server) Start(addr string) error {
	err := s.echo.Start(addr)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

type request struct {
	cfg        rascii.Config
	mode       termcolor.Mode
	background bool
}

func (s *Server) parseRequest(q url.Values) (request, error) {
	req := request{
		cfg:  s.opts.Defaults,
		mode: s.opts.Mode,
	}

	var err error
	if v := q.Get("cols"); v != "" {
		if req.cfg.Columns, err = strconv.Atoi(v); err != nil {
			return req, fmt.Errorf("invalid cols: %v", err)
		}
	}
	if v := q.Get("rows"); v != "" {
		if req.cfg.Rows, err = strconv.Atoi(v); err != nil {
			return req, fmt.Errorf("invalid rows: %v", err)
		}
	}
	if v := q.Get("color"); v != "" {
		if req.cfg.Color, err = strconv.ParseBool(v); err != nil {
			return req, fmt.Errorf("invalid color: %v", err)
		}
	}
	if v := q.Get("depth"); v != "" {
		depth, err := strconv.ParseUint(v, 10, 8)
		if err != nil {
			return req, fmt.Errorf("invalid depth: %v", err)
		}
		req.cfg.Depth = uint8(depth)
	}
	if v := q.Get("mode"); v != "" {
		if req.mode, err = termcolor.ParseMode(v); err != nil {
			return req, err
		}
	}
	if v := q.Get("bg"); v != "" {
		if req.background, err = strconv.ParseBool(v); err != nil {
			return req, fmt.Errorf("invalid bg: %v", err)
		}
	}

	return req, nil
}

// convert decodes, converts and renders the image read from r.
func (s *Server) convert(ctx context.Context, r io.Reader, req request) ([]byte, error) {
	start := time.Now()

	img, err := imageio.DecodeImage(r)
	if err != nil {
		return nil, err
	}

	src := rascii.NewImageSource(prepare.Apply(img, s.opts.Prepare))

	grid, err := rascii.ConvertContext(ctx, src, req.cfg)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	fg, bg := termcolor.Callbacks(&buf, req.mode, req.background)
	if err := rascii.Render(grid, &buf, fg, bg); err != nil {
		return nil, err
	}
	if fg != nil {
		termcolor.Reset(&buf)
	}

	s.log.Debug("converted image",
		"width", src.Width(), "height", src.Height(),
		"cols", grid.Cols(), "rows", grid.Rows(),
		"took", time.Since(start))

	return buf.Bytes(), nil
}

func (s *Server) handleConvert(c echo.Context) error {
	req, err := s.parseRequest(c.QueryParams())
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	body := http.MaxBytesReader(c.Response(), c.Request().Body, s.opts.MaxBodyBytes)
	data, err := io.ReadAll(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return echo.NewHTTPError(http.StatusRequestEntityTooLarge, err.Error())
		}
		return err
	}

	art, err := s.convert(c.Request().Context(), bytes.NewReader(data), req)
	if err != nil {
		return conversionError(err)
	}

	return c.Blob(http.StatusOK, echo.MIMETextPlainCharsetUTF8, art)
}

func conversionError(err error) error {
	var loadErr *imageio.LoadError
	switch {
	case errors.As(err, &loadErr), errors.Is(err, rascii.ErrInvalidDimension):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return err
	}
}

func (s *Server) handleWebsocket(c echo.Context) error {
	req, err := s.parseRequest(c.QueryParams())
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	ws.SetReadLimit(s.opts.MaxBodyBytes)
	ctx := c.Request().Context()

	for {
		typ, data, err := ws.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Debug("websocket read failed", "error", err)
			}
			return nil
		}

		var reply []byte
		if typ != websocket.BinaryMessage {
			reply = []byte("error: expected a binary image message")
		} else if art, err := s.convert(ctx, bytes.NewReader(data), req); err != nil {
			reply = []byte("error: " + err.Error())
		} else {
			reply = art
		}

		if err := ws.WriteMessage(websocket.TextMessage, reply); err != nil {
			s.log.Debug("websocket write failed", "error", err)
			return nil
		}
	}
}
