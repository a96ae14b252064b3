package rascii

import (
	"io"
	"testing"
)

func benchmarkConvert(b *testing.B, cfg Config) {
	src := NewImageSource(tileImage(1920, 1080, 7, 5))

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		grid, err := Convert(src, cfg)
		if err != nil {
			b.Fatal(err)
		}
		if err := Render(grid, io.Discard, nil, nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkConvertColor(b *testing.B) {
	benchmarkConvert(b, Config{Columns: 200, Rows: 100, Color: true})
}

func BenchmarkConvertGrayscale(b *testing.B) {
	benchmarkConvert(b, Config{Columns: 200, Rows: 100})
}

func BenchmarkConvertWorkers(b *testing.B) {
	benchmarkConvert(b, Config{Columns: 200, Rows: 100, Color: true, Workers: 8})
}

func BenchmarkConvertParallel(b *testing.B) {
	src := NewImageSource(tileImage(640, 360, 7, 5))
	cfg := Config{Columns: 80, Rows: 40, Color: true, Depth: 11}

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := Convert(src, cfg); err != nil {
				b.Error(err)
				return
			}
		}
	})
}
