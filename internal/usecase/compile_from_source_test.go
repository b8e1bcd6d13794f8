package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madrazzl3/solbuild/internal/domain/compiler"
)

type mockSourceBuilder struct {
	materializeFunc func(ctx context.Context, metadata *compiler.ContractMetadata, destDir string) (*compiler.Project, error)
	destDirs        []string
}

func (m *mockSourceBuilder) Materialize(ctx context.Context, metadata *compiler.ContractMetadata, destDir string) (*compiler.Project, error) {
	m.destDirs = append(m.destDirs, destDir)
	if m.materializeFunc != nil {
		return m.materializeFunc(ctx, metadata, destDir)
	}
	return &compiler.Project{Root: destDir, SourcesDir: metadata.ContractName, Ephemeral: true, NoArtifacts: true}, nil
}

func counterMetadata() *compiler.ContractMetadata {
	return &compiler.ContractMetadata{
		ContractName:    "Counter",
		CompilerVersion: "v0.8.19+commit.7dd6d404",
		Sources:         map[string]string{"Counter.sol": "contract Counter {}"},
	}
}

func completeArtifact() *compiler.Artifact {
	a := sizedTestArtifact(10, `[]`)
	a.Bytecode = compiler.BytecodeObject{Object: "0x6080"}
	a.Metadata.Compiler.Version = "0.8.19+commit.7dd6d404"
	return a
}

func TestCompileFromSource(t *testing.T) {
	builder := &mockSourceBuilder{}
	mock := &mockCompiler{
		compileFunc: func(context.Context, *compiler.Project) (*compiler.Output, error) {
			return &compiler.Output{
				Artifacts: map[string]*compiler.Artifact{"Counter": completeArtifact()},
			}, nil
		},
	}
	uc := NewCompileFromSource(builder, mock, testLogger())

	result, err := uc.Run(context.Background(), counterMetadata())
	require.NoError(t, err)
	assert.Equal(t, "Counter", result.Name)
	assert.Equal(t, "0.8.19", result.CompilerVersion)
	assert.Equal(t, "0x6080", result.Bytecode.Object)

	// the temp root must be gone after the invocation
	require.Len(t, builder.destDirs, 1)
	assert.NoDirExists(t, builder.destDirs[0])
}

func TestCompileFromSourceMissingArtifact(t *testing.T) {
	builder := &mockSourceBuilder{}
	mock := &mockCompiler{
		compileFunc: func(context.Context, *compiler.Project) (*compiler.Output, error) {
			return &compiler.Output{Artifacts: map[string]*compiler.Artifact{}}, nil
		},
	}
	uc := NewCompileFromSource(builder, mock, testLogger())

	_, err := uc.Run(context.Background(), counterMetadata())
	assert.ErrorIs(t, err, compiler.ErrIncompleteArtifact)
}

func TestCompileFromSourceMissingBytecode(t *testing.T) {
	builder := &mockSourceBuilder{}
	mock := &mockCompiler{
		compileFunc: func(context.Context, *compiler.Project) (*compiler.Output, error) {
			return &compiler.Output{
				// deployed bytecode present, creation bytecode missing
				Artifacts: map[string]*compiler.Artifact{"Counter": sizedTestArtifact(10, `[]`)},
			}, nil
		},
	}
	uc := NewCompileFromSource(builder, mock, testLogger())

	_, err := uc.Run(context.Background(), counterMetadata())
	assert.ErrorIs(t, err, compiler.ErrIncompleteArtifact)
}

func TestCompileFromSourceCompilerErrors(t *testing.T) {
	builder := &mockSourceBuilder{}
	mock := &mockCompiler{
		compileFunc: func(context.Context, *compiler.Project) (*compiler.Output, error) {
			return &compiler.Output{HasErrors: true, Diagnostics: "CompilerError: stack too deep"}, nil
		},
	}
	uc := NewCompileFromSource(builder, mock, testLogger())

	_, err := uc.Run(context.Background(), counterMetadata())
	var compErr *compiler.CompilerError
	require.ErrorAs(t, err, &compErr)

	require.Len(t, builder.destDirs, 1)
	assert.NoDirExists(t, builder.destDirs[0], "temp root released on failure too")
}
