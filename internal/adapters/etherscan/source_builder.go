// Package etherscan rebuilds isolated projects from explorer-fetched
// contract metadata so a single verified contract can be recompiled exactly
// as it was deployed.
package etherscan

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/madrazzl3/solbuild/internal/domain/compiler"
	"github.com/madrazzl3/solbuild/internal/usecase"
)

// ozPrefix is the remapping injected when the fetched settings declare no
// @openzeppelin/ remapping of their own.
const ozPrefix = "@openzeppelin/"

// SourceBuilder materializes contract metadata into an ephemeral project
// rooted at a caller-owned directory.
type SourceBuilder struct {
	solc usecase.SolcResolver
	log  *slog.Logger
}

// NewSourceBuilder creates a new source project builder.
func NewSourceBuilder(solc usecase.SolcResolver, log *slog.Logger) *SourceBuilder {
	return &SourceBuilder{
		solc: solc,
		log:  log.With("component", "SourceBuilder"),
	}
}

// Materialize writes the metadata's source tree under destDir and returns a
// project pinned to the recorded compiler version. The layout is
//
//	destDir/
//	  ContractName/
//	    [source tree]
func (b *SourceBuilder) Materialize(ctx context.Context, metadata *compiler.ContractMetadata, destDir string) (*compiler.Project, error) {
	root, err := filepath.Abs(destDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve destination %s: %w", destDir, err)
	}
	sourcesPath := filepath.Join(root, metadata.ContractName)

	if err := writeSourceTree(metadata.Sources, sourcesPath); err != nil {
		return nil, err
	}

	remappings := normalizeRemappings(metadata.Remappings, sourcesPath)

	version, err := parseCompilerVersion(metadata.CompilerVersion)
	if err != nil {
		return nil, err
	}
	if _, err := b.solc.FindOrInstall(ctx, version); err != nil {
		return nil, err
	}

	b.log.Debug("materialized source project",
		"contract", metadata.ContractName, "root", root, "solc", version)

	return &compiler.Project{
		Root:        root,
		SourcesDir:  metadata.ContractName,
		OutDir:      "out",
		Remappings:  remappings,
		SolcVersion: version,
		Ephemeral:   true,
		NoArtifacts: true,
	}, nil
}

// writeSourceTree writes each fetched source file below sourcesPath. The
// paths come from an explorer response and are untrusted; anything that
// resolves outside sourcesPath is rejected before touching the filesystem.
func writeSourceTree(sources map[string]string, sourcesPath string) error {
	for path, content := range sources {
		full := filepath.Join(sourcesPath, strings.TrimPrefix(path, "/"))
		if !underRoot(sourcesPath, full) {
			return fmt.Errorf("source path %s escapes the project root", path)
		}
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			return fmt.Errorf("failed to create source directory: %w", err)
		}
		if err := os.WriteFile(full, []byte(content), 0644); err != nil {
			return fmt.Errorf("failed to write source %s: %w", path, err)
		}
	}
	return nil
}

// underRoot reports whether path stays at or below root once cleaned.
func underRoot(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// normalizeRemappings rebases every remapping onto the materialized sources
// root and guarantees an @openzeppelin/ remapping exists.
func normalizeRemappings(remappings []compiler.Remapping, sourcesPath string) []compiler.Remapping {
	normalized := make([]compiler.Remapping, 0, len(remappings)+1)
	hasOZ := false
	for _, r := range remappings {
		if strings.HasPrefix(r.Name, ozPrefix) {
			hasOZ = true
		}
		normalized = append(normalized, compiler.Remapping{
			Name: r.Name,
			Path: filepath.Join(sourcesPath, strings.TrimPrefix(r.Path, "/")),
		})
	}
	if !hasOZ {
		normalized = append(normalized, compiler.Remapping{
			Name: ozPrefix,
			Path: filepath.Join(sourcesPath, "@openzeppelin"),
		})
	}
	return normalized
}

// parseCompilerVersion reduces an explorer version string such as
// "v0.8.19+commit.7dd6d404" to the bare semver triple.
func parseCompilerVersion(version string) (string, error) {
	v := strings.TrimPrefix(strings.TrimSpace(version), "v")
	if i := strings.IndexByte(v, '+'); i >= 0 {
		v = v[:i]
	}
	if v == "" {
		return "", fmt.Errorf("metadata has no compiler version")
	}
	return v, nil
}

var _ usecase.SourceProjectBuilder = (*SourceBuilder)(nil)
