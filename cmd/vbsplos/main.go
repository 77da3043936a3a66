// Command vbsplos is the CLI entry point: load a .bsp file and report
// whether it loaded successfully. Per spec.md §6, this is a thin
// wrapper — the actual query logic lives in packages bsp and trace.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/go-vbsp/vbsp-los/bsp"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: vbsplos <path-to-bsp>")
		os.Exit(1)
	}
	path := os.Args[1]

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	model, err := bsp.Open(path)
	if err != nil {
		logger.Error("failed to load map", "path", path, "error", err)
		os.Exit(1)
	}

	logger.Info("loaded map",
		"path", path,
		"planes", len(model.Planes),
		"nodes", len(model.Nodes),
		"leafs", len(model.Leafs),
		"polygons", len(model.Polygons),
	)
}
