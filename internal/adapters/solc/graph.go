package solc

import (
	"context"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/madrazzl3/solbuild/internal/domain/compiler"
	"github.com/madrazzl3/solbuild/internal/usecase"
)

// GraphAdapter resolves the project's dependency-graph file set: every
// Solidity source reachable from the project's input roots, by absolute
// path. Files outside those roots are standalone.
type GraphAdapter struct {
	log *slog.Logger
}

// NewGraphAdapter creates a new graph resolver.
func NewGraphAdapter(log *slog.Logger) *GraphAdapter {
	return &GraphAdapter{log: log.With("component", "GraphAdapter")}
}

// ResolveGraph enumerates the member files of the project's graph.
func (g *GraphAdapter) ResolveGraph(ctx context.Context, project *compiler.Project) (*compiler.SourceGraph, error) {
	var files []string
	for _, root := range project.InputRoots() {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// missing roots (no test dir, no libs) are not an error
				return nil
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if !d.IsDir() && strings.HasSuffix(path, ".sol") {
				abs, err := filepath.Abs(path)
				if err != nil {
					return err
				}
				files = append(files, abs)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	g.log.Debug("resolved dependency graph", "files", len(files))
	return compiler.NewSourceGraph(files), nil
}

var _ usecase.GraphResolver = (*GraphAdapter)(nil)
