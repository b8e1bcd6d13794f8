package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/madrazzl3/solbuild/internal/domain/compiler"
)

// CompileTargetOptions configures target resolution and compilation.
type CompileTargetOptions struct {
	// Silent suppresses all console-facing behavior, including name/size
	// collection even when the broader configuration enables it.
	Silent bool
	// Verify requires the target to be a member of a resolvable project.
	Verify bool
	// Skip filters applied when the target compiles as a graph member.
	Skip compiler.SkipFilters
	// PrintNames and PrintSizes carry the caller's broader configuration.
	PrintNames bool
	PrintSizes bool
}

// CompileTarget resolves whether a requested path is part of the project's
// dependency graph and compiles it accordingly: graph members go through the
// full build pipeline, standalone files are compiled directly.
type CompileTarget struct {
	compiler Compiler
	graphs   GraphResolver
	build    *BuildProject
	progress ProgressSink
	log      *slog.Logger
}

// NewCompileTarget creates the target-resolution use case.
func NewCompileTarget(c Compiler, graphs GraphResolver, build *BuildProject, progress ProgressSink, log *slog.Logger) *CompileTarget {
	return &CompileTarget{
		compiler: c,
		graphs:   graphs,
		build:    build,
		progress: progress,
		log:      log.With("component", "CompileTarget"),
	}
}

// Run compiles targetPath within project.
func (uc *CompileTarget) Run(ctx context.Context, project *compiler.Project, targetPath string, opts CompileTargetOptions) (*BuildResult, error) {
	target, err := filepath.Abs(targetPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve target path %s: %w", targetPath, err)
	}

	graph, err := uc.graphs.ResolveGraph(ctx, project)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve dependency graph: %w", err)
	}

	if !graph.Contains(target) {
		// standalone file outside the tracked project
		if opts.Verify {
			return nil, fmt.Errorf("%s: %w", target, compiler.ErrStandaloneVerify)
		}
		uc.log.Debug("compiling standalone target", "target", target)
		return uc.compileStandalone(ctx, project, target, opts)
	}

	return uc.build.Run(ctx, project, BuildOptions{
		PrintNames: opts.PrintNames && !opts.Silent,
		PrintSizes: opts.PrintSizes && !opts.Silent,
		Skip:       opts.Skip,
		Silent:     opts.Silent,
	})
}

// compileStandalone compiles just the target file, bypassing skip filters.
func (uc *CompileTarget) compileStandalone(ctx context.Context, project *compiler.Project, target string, opts CompileTargetOptions) (*BuildResult, error) {
	progress := uc.progress
	if opts.Silent {
		progress = NopProgress{}
	}
	progress.OnProgress(ctx, ProgressEvent{Stage: StageCompileStart, Message: "Compiling...", Spinner: true})
	defer progress.OnProgress(ctx, ProgressEvent{Stage: StageCompileDone})

	start := time.Now()
	output, err := uc.compiler.CompileFiles(ctx, project, []string{target})
	elapsed := time.Since(start)
	if err != nil {
		return nil, err
	}
	if output.HasErrors {
		return nil, &compiler.CompilerError{Diagnostics: output.Diagnostics}
	}
	return &BuildResult{Outcome: OutcomeCompiled, Output: output, Elapsed: elapsed}, nil
}
