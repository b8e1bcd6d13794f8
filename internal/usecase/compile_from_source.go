package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/madrazzl3/solbuild/internal/domain/compiler"
)

// SourceCompileResult is the recompiled bytecode of one externally-fetched
// contract.
type SourceCompileResult struct {
	Name             string
	CompilerVersion  string
	ABI              json.RawMessage
	Bytecode         compiler.BytecodeObject
	DeployedBytecode compiler.BytecodeObject
}

// CompileFromSource rebuilds a single contract in isolation from its
// externally-fetched metadata, inside a temporary directory that is released
// when the invocation finishes.
type CompileFromSource struct {
	builder  SourceProjectBuilder
	compiler Compiler
	log      *slog.Logger
}

// NewCompileFromSource creates the isolated-recompile use case.
func NewCompileFromSource(builder SourceProjectBuilder, c Compiler, log *slog.Logger) *CompileFromSource {
	return &CompileFromSource{
		builder:  builder,
		compiler: c,
		log:      log.With("component", "CompileFromSource"),
	}
}

// Run materializes the metadata's source tree and compiles it silently.
func (uc *CompileFromSource) Run(ctx context.Context, metadata *compiler.ContractMetadata) (*SourceCompileResult, error) {
	root, err := os.MkdirTemp("", "solbuild-source-")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp project root: %w", err)
	}
	defer os.RemoveAll(root)

	project, err := uc.builder.Materialize(ctx, metadata, root)
	if err != nil {
		return nil, fmt.Errorf("failed to materialize project for %s: %w", metadata.ContractName, err)
	}
	uc.log.Debug("materialized source project", "contract", metadata.ContractName, "root", project.Root)

	output, err := uc.compiler.Compile(ctx, project)
	if err != nil {
		return nil, err
	}
	if output.HasErrors {
		return nil, &compiler.CompilerError{Diagnostics: output.Diagnostics}
	}

	artifact, ok := output.Artifacts[metadata.ContractName]
	if !ok {
		return nil, fmt.Errorf("no artifact for contract %s: %w", metadata.ContractName, compiler.ErrIncompleteArtifact)
	}
	if !artifact.Bytecode.IsPresent() || !artifact.DeployedBytecode.IsPresent() {
		return nil, fmt.Errorf("contract %s is missing bytecode fields: %w", metadata.ContractName, compiler.ErrIncompleteArtifact)
	}

	return &SourceCompileResult{
		Name:             metadata.ContractName,
		CompilerVersion:  artifact.CompilerVersion(),
		ABI:              artifact.ABI,
		Bytecode:         artifact.Bytecode,
		DeployedBytecode: artifact.DeployedBytecode,
	}, nil
}
