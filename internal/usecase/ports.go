package usecase

import (
	"context"

	"github.com/madrazzl3/solbuild/internal/domain/compiler"
)

// Compiler is the external toolchain boundary: it owns parsing, dependency
// resolution, artifact generation and incremental caching.
type Compiler interface {
	// Compile builds the whole project with full artifact output.
	Compile(ctx context.Context, project *compiler.Project) (*compiler.Output, error)
	// CompileSparse builds the whole project but emits full artifacts only
	// for files included by the filter.
	CompileSparse(ctx context.Context, project *compiler.Project, filter compiler.FileFilter) (*compiler.Output, error)
	// CompileFiles builds only the given files, which need not live under
	// the project's source directory.
	CompileFiles(ctx context.Context, project *compiler.Project, files []string) (*compiler.Output, error)
}

// GraphResolver exposes the toolchain's dependency graph facts.
type GraphResolver interface {
	ResolveGraph(ctx context.Context, project *compiler.Project) (*compiler.SourceGraph, error)
}

// SolcResolver locates or installs an exact compiler version and returns the
// path of the resolved binary.
type SolcResolver interface {
	FindOrInstall(ctx context.Context, version string) (string, error)
}

// SourceProjectBuilder reconstructs an isolated project from externally
// fetched contract metadata.
type SourceProjectBuilder interface {
	Materialize(ctx context.Context, metadata *compiler.ContractMetadata, destDir string) (*compiler.Project, error)
}

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Message string
	Spinner bool
}

// Progress stages emitted by the build use cases.
const (
	StageCompileStart = "compile:start"
	StageCompileDone  = "compile:done"
)

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}
