package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	get "github.com/hashicorp/go-getter"
)

func main() {
	var (
		base   = flag.String("url", "git::https://github.com/Auburn/FastNoiseLite.git", "source repository, in go-getter syntax")
		subdir = flag.String("subdir", "", "only fetch this subdirectory of the repository (e.g. Cpp)")
		ref    = flag.String("ref", "", "git tag, branch or commit to check out")
		out    = flag.String("o", "./upstream", "output dir path")
	)
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *out == "" || *base == "" {
		log.Error("both -url and -o are required")
		os.Exit(2)
	}

	path := *out
	if *ref != "" {
		path = filepath.Join(*out, *ref)
	}
	if err := os.RemoveAll(path); err != nil {
		log.Error("clear output dir", "path", path, "error", err)
		os.Exit(1)
	}

	src := sourceURL(*base, *subdir, *ref)
	log.Info("start downloading upstream sources", "src", src, "dst", path)

	if err := get.Get(path, src); err != nil {
		log.Error("download upstream sources", "error", err)
		os.Exit(1)
	}

	log.Info("done downloading upstream sources", "dst", path)
}

// sourceURL builds a go-getter address, e.g.
// git::https://github.com/Auburn/FastNoiseLite.git//Cpp?ref=v1.1.1
func sourceURL(base, subdir, ref string) string {
	src := base
	if subdir != "" {
		src = fmt.Sprintf("%s//%s", src, subdir)
	}
	if ref != "" {
		src = fmt.Sprintf("%s?ref=%s", src, ref)
	}
	return src
}
