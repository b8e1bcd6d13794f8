package solc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madrazzl3/solbuild/internal/domain/compiler"
)

const counterArtifact = `{
	"abi": [{"type":"function","name":"increment","inputs":[],"outputs":[],"stateMutability":"nonpayable"}],
	"bytecode": {"object": "0x6080604052", "linkReferences": {}},
	"deployedBytecode": {"object": "0x6080", "linkReferences": {}},
	"metadata": {
		"compiler": {"version": "0.8.19+commit.7dd6d404"},
		"language": "Solidity",
		"settings": {"compilationTarget": {"src/Counter.sol": "Counter"}}
	}
}`

const counterTestArtifact = `{
	"abi": [{"type":"function","name":"testIncrement","inputs":[],"outputs":[],"stateMutability":"nonpayable"}],
	"bytecode": {"object": "0x6080", "linkReferences": {}},
	"deployedBytecode": {"object": "0x6080", "linkReferences": {}},
	"metadata": {
		"compiler": {"version": "0.8.19+commit.7dd6d404"},
		"language": "Solidity",
		"settings": {"compilationTarget": {"test/Counter.t.sol": "CounterTest"}}
	}
}`

func writeArtifact(t *testing.T, outDir, sourceDir, name, content string) {
	t.Helper()
	dir := filepath.Join(outDir, sourceDir)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".json"), []byte(content), 0644))
}

func TestLoadArtifacts(t *testing.T) {
	outDir := t.TempDir()
	writeArtifact(t, outDir, "Counter.sol", "Counter", counterArtifact)
	writeArtifact(t, outDir, "Counter.t.sol", "CounterTest", counterTestArtifact)

	// build-info is compiler input, not an artifact
	writeArtifact(t, outDir, "build-info", "d4a41cb881dd0a2f", `{"solcVersion": "0.8.19"}`)
	// non-artifact json files are skipped
	writeArtifact(t, outDir, ".", "cache", `{"files": {}}`)

	artifacts, err := LoadArtifacts(outDir)
	require.NoError(t, err)
	require.Len(t, artifacts, 2)
	assert.Equal(t, "0.8.19", artifacts["Counter"].CompilerVersion())
	assert.Equal(t, "src/Counter.sol", artifacts["Counter"].SourcePath())
	assert.Contains(t, artifacts, "CounterTest")
}

func TestLoadArtifactsMissingOutDir(t *testing.T) {
	artifacts, err := LoadArtifacts(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	assert.Empty(t, artifacts)
}

func TestPruneArtifacts(t *testing.T) {
	outDir := t.TempDir()
	writeArtifact(t, outDir, "Counter.sol", "Counter", counterArtifact)
	writeArtifact(t, outDir, "Counter.t.sol", "CounterTest", counterTestArtifact)

	artifacts, err := LoadArtifacts(outDir)
	require.NoError(t, err)

	pruned := pruneArtifacts(artifacts, compiler.SkipFilters{compiler.SkipTests})
	assert.Contains(t, pruned, "Counter")
	assert.NotContains(t, pruned, "CounterTest")
}

func TestBuildArgs(t *testing.T) {
	project := &compiler.Project{
		Root:       "/tmp/project",
		SourcesDir: "src",
		OutDir:     "out",
	}

	t.Run("full compile", func(t *testing.T) {
		assert.Equal(t,
			[]string{"build", "--contracts", "src", "--out", "out"},
			buildArgs(project, nil, nil))
	})

	t.Run("sparse compile passes skip tokens", func(t *testing.T) {
		skip := compiler.SkipFilters{compiler.SkipTests, compiler.CustomSkipFilter("Vendored")}
		assert.Equal(t,
			[]string{"build", "--contracts", "src", "--out", "out", "--skip", "test", "--skip", "*Vendored*"},
			buildArgs(project, skip, nil))
	})

	t.Run("file compile", func(t *testing.T) {
		args := buildArgs(project, nil, []string{"/tmp/project/Standalone.sol"})
		assert.Equal(t, "/tmp/project/Standalone.sol", args[1])
	})

	t.Run("pinned ephemeral project", func(t *testing.T) {
		pinned := &compiler.Project{Root: "/tmp/p", SolcVersion: "0.8.19", Ephemeral: true}
		args := buildArgs(pinned, nil, nil)
		assert.Contains(t, args, "--use")
		assert.Contains(t, args, "0.8.19")
		assert.Contains(t, args, "--no-cache")
	})
}
