// Package solc drives the external Foundry/solc toolchain. Parsing,
// dependency resolution and incremental caching all happen on the other side
// of this boundary; the adapter translates projects and filters into forge
// invocations and loads the resulting artifacts back.
package solc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/madrazzl3/solbuild/internal/domain/compiler"
	"github.com/madrazzl3/solbuild/internal/usecase"
)

// unchangedMarker is forge's cache-skip message.
const unchangedMarker = "No files changed, compilation skipped"

// ForgeCompiler implements the Compiler port by shelling out to forge.
type ForgeCompiler struct {
	log *slog.Logger
}

// NewForgeCompiler creates a new forge-backed compiler adapter.
func NewForgeCompiler(log *slog.Logger) *ForgeCompiler {
	return &ForgeCompiler{log: log.With("component", "ForgeCompiler")}
}

// Compile builds the whole project with full artifact output.
func (f *ForgeCompiler) Compile(ctx context.Context, project *compiler.Project) (*compiler.Output, error) {
	return f.run(ctx, project, nil, nil)
}

// CompileSparse builds the project but keeps artifacts only for files the
// filter includes. Excluded files still parse on the forge side.
func (f *ForgeCompiler) CompileSparse(ctx context.Context, project *compiler.Project, filter compiler.FileFilter) (*compiler.Output, error) {
	return f.run(ctx, project, filter, nil)
}

// CompileFiles builds only the given files.
func (f *ForgeCompiler) CompileFiles(ctx context.Context, project *compiler.Project, files []string) (*compiler.Output, error) {
	return f.run(ctx, project, nil, files)
}

func (f *ForgeCompiler) run(ctx context.Context, project *compiler.Project, filter compiler.FileFilter, files []string) (*compiler.Output, error) {
	args := buildArgs(project, filter, files)
	f.log.Debug("running forge build", "dir", project.Root, "args", args)

	cmd := exec.CommandContext(ctx, "forge", args...)
	cmd.Dir = project.Root
	if len(project.Remappings) > 0 {
		cmd.Env = append(os.Environ(), "FOUNDRY_REMAPPINGS="+remappingsEnv(project.Remappings))
	}

	start := time.Now()
	raw, err := cmd.CombinedOutput()
	duration := time.Since(start)

	diagnostics := string(raw)
	output := &compiler.Output{
		Diagnostics: diagnostics,
		Unchanged:   strings.Contains(diagnostics, unchangedMarker),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("failed to run forge build: %w", err)
		}
		// forge exits non-zero on compiler errors; the diagnostics text is
		// the payload the caller cares about
		f.log.Warn("compiled with errors", "duration", duration)
		output.HasErrors = true
		return output, nil
	}

	f.log.Debug("forge build completed", "duration", duration)

	artifacts, err := LoadArtifacts(project.ArtifactsDir())
	if err != nil {
		return nil, fmt.Errorf("failed to load artifacts: %w", err)
	}
	if filter != nil {
		artifacts = pruneArtifacts(artifacts, filter)
	}
	output.Artifacts = artifacts

	return output, nil
}

// buildArgs assembles the forge build invocation for one compile.
func buildArgs(project *compiler.Project, filter compiler.FileFilter, files []string) []string {
	args := []string{"build"}
	args = append(args, files...)

	if project.SourcesDir != "" {
		args = append(args, "--contracts", project.SourcesDir)
	}
	if project.OutDir != "" {
		args = append(args, "--out", project.OutDir)
	}
	if project.SolcVersion != "" {
		args = append(args, "--use", project.SolcVersion)
	}
	if project.Ephemeral {
		args = append(args, "--no-cache")
	}

	// forge understands skip filters natively; anything else falls back to
	// post-hoc pruning in pruneArtifacts
	if skip, ok := filter.(compiler.SkipFilters); ok {
		for _, f := range skip {
			args = append(args, "--skip", skipToken(f))
		}
	}

	return args
}

// skipToken maps a SkipFilter to the forge --skip argument.
func skipToken(f compiler.SkipFilter) string {
	switch f {
	case compiler.SkipTests:
		return "test"
	case compiler.SkipScripts:
		return "script"
	default:
		return "*" + f.Pattern() + "*"
	}
}

// pruneArtifacts drops artifacts whose source file the filter excludes,
// matching sparse output selection semantics exactly even when forge
// compiled more than requested.
func pruneArtifacts(artifacts map[string]*compiler.Artifact, filter compiler.FileFilter) map[string]*compiler.Artifact {
	kept := make(map[string]*compiler.Artifact, len(artifacts))
	for name, artifact := range artifacts {
		source := artifact.SourcePath()
		if source != "" && !filter.IncludedInSparseOutput(source) {
			continue
		}
		kept[name] = artifact
	}
	return kept
}

// remappingsEnv renders remappings in the newline-separated form forge reads
// from the environment.
func remappingsEnv(remappings []compiler.Remapping) string {
	lines := make([]string, 0, len(remappings))
	for _, r := range remappings {
		lines = append(lines, r.String())
	}
	return strings.Join(lines, "\n")
}

var _ usecase.Compiler = (*ForgeCompiler)(nil)
