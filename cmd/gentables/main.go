package main

import (
	"flag"
	"log/slog"
	"os"
)

func main() {
	var (
		header = flag.String("header", "./upstream/FastNoiseLite.h", "path to FastNoiseLite.h (fetch it with fetchupstream -subdir Cpp)")
		out    = flag.String("o", "./pkg/noise/randvecs.go", "generated Go file")
		pkg    = flag.String("pkg", "noise", "package name of the generated file")
	)
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	src, err := os.ReadFile(*header)
	if err != nil {
		log.Error("read header", "error", err)
		os.Exit(1)
	}

	tables, err := parseRandVecs(src)
	if err != nil {
		log.Error("parse random vector tables", "header", *header, "error", err)
		os.Exit(1)
	}

	code, err := render(*pkg, tables)
	if err != nil {
		log.Error("render tables", "error", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*out, code, 0o644); err != nil {
		log.Error("write tables", "path", *out, "error", err)
		os.Exit(1)
	}

	log.Info("tables written", "path", *out, "vecs2d", len(tables.Vecs2D)/2, "vecs3d", len(tables.Vecs3D)/4)
}
