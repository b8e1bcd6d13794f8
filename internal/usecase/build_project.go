package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/madrazzl3/solbuild/internal/domain/compiler"
)

// BuildOptions configures one project build.
type BuildOptions struct {
	// PrintNames collects compiled contract names per compiler version.
	PrintNames bool
	// PrintSizes builds a deployed-size report from the artifact set.
	PrintSizes bool
	// Skip prunes artifact output for matching files via a sparse compile.
	Skip compiler.SkipFilters
	// Silent suppresses progress reporting and diagnostic surfacing while
	// keeping success/failure semantics identical.
	Silent bool
}

// BuildOutcome is the terminal state of a build invocation.
type BuildOutcome int

const (
	// OutcomeNothingToCompile means the project had no input files and the
	// toolchain was never invoked. This is a success, not an error.
	OutcomeNothingToCompile BuildOutcome = iota
	// OutcomeCompiled means the toolchain produced fresh output.
	OutcomeCompiled
	// OutcomeUnchanged means the toolchain's cache decided nothing needed
	// recompiling. Post-processing still runs; diagnostics are not
	// re-surfaced.
	OutcomeUnchanged
)

// BuildResult is the observable outcome of a build, including the signals
// the CLI turns into process exit codes.
type BuildResult struct {
	Outcome BuildOutcome
	Output  *compiler.Output
	// VersionedNames groups contract names by compiler version when
	// PrintNames was requested.
	VersionedNames map[string][]string
	// SizeReport is present when PrintSizes was requested.
	SizeReport *compiler.SizeReport
	// ExceededSizeLimit is set when a non-dev contract is over the EIP-170
	// limit. The report is still produced; the caller decides how to fail.
	ExceededSizeLimit bool
	Elapsed           time.Duration
}

// BuildProject compiles a project through the external toolchain, choosing
// full or sparse compilation from the configured skip filters.
type BuildProject struct {
	compiler Compiler
	progress ProgressSink
	log      *slog.Logger
}

// NewBuildProject creates the build use case.
func NewBuildProject(c Compiler, progress ProgressSink, log *slog.Logger) *BuildProject {
	return &BuildProject{
		compiler: c,
		progress: progress,
		log:      log.With("component", "BuildProject"),
	}
}

// Run compiles the project and applies the requested post-processing.
func (uc *BuildProject) Run(ctx context.Context, project *compiler.Project, opts BuildOptions) (*BuildResult, error) {
	if !project.HasInputFiles() {
		uc.log.Debug("no input files, skipping toolchain", "root", project.Root)
		return &BuildResult{Outcome: OutcomeNothingToCompile}, nil
	}

	output, elapsed, err := uc.compile(ctx, project, opts)
	if err != nil {
		return nil, err
	}
	uc.log.Debug("finished compiling", "elapsed", elapsed, "unchanged", output.Unchanged)

	if output.HasErrors {
		return nil, &compiler.CompilerError{Diagnostics: output.Diagnostics}
	}

	result := &BuildResult{
		Outcome: OutcomeCompiled,
		Output:  output,
		Elapsed: elapsed,
	}
	if output.Unchanged {
		result.Outcome = OutcomeUnchanged
	}

	if opts.PrintNames && !opts.Silent {
		result.VersionedNames = output.VersionedNames()
	}
	if opts.PrintSizes && !opts.Silent {
		result.SizeReport = compiler.BuildSizeReport(output.Artifacts)
		result.ExceededSizeLimit = result.SizeReport.ExceedsSizeLimit()
	}

	return result, nil
}

// compile dispatches to the toolchain, sparse when filters are configured.
func (uc *BuildProject) compile(ctx context.Context, project *compiler.Project, opts BuildOptions) (*compiler.Output, time.Duration, error) {
	progress := uc.progress
	if opts.Silent {
		progress = NopProgress{}
	}

	progress.OnProgress(ctx, ProgressEvent{Stage: StageCompileStart, Message: "Compiling...", Spinner: true})
	defer progress.OnProgress(ctx, ProgressEvent{Stage: StageCompileDone})

	start := time.Now()
	var (
		output *compiler.Output
		err    error
	)
	if len(opts.Skip) == 0 {
		output, err = uc.compiler.Compile(ctx, project)
	} else {
		output, err = uc.compiler.CompileSparse(ctx, project, opts.Skip)
	}
	return output, time.Since(start), err
}
