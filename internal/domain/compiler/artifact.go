package compiler

import (
	"encoding/json"
	"strings"
)

// BytecodeObject represents bytecode information in a compiler artifact.
// Object is hex text; when the contract references unlinked libraries it
// contains `__$<hash>$__` placeholders instead of addresses.
type BytecodeObject struct {
	Object         string         `json:"object"`
	SourceMap      string         `json:"sourceMap,omitempty"`
	LinkReferences map[string]any `json:"linkReferences,omitempty"`
}

// IsPresent reports whether the artifact carries this bytecode at all.
// Interface-only contracts produce artifacts without deployable bytecode.
func (b *BytecodeObject) IsPresent() bool {
	return b != nil && b.Object != "" && b.Object != "0x"
}

// Artifact is the compiled output for a single contract.
type Artifact struct {
	ABI              json.RawMessage  `json:"abi"`
	Bytecode         BytecodeObject   `json:"bytecode"`
	DeployedBytecode BytecodeObject   `json:"deployedBytecode"`
	Metadata         ArtifactMetadata `json:"metadata"`
}

// ArtifactMetadata is the metadata section of a compiler artifact.
type ArtifactMetadata struct {
	Compiler struct {
		Version string `json:"version"`
	} `json:"compiler"`
	Language string `json:"language"`
	Settings struct {
		CompilationTarget map[string]string `json:"compilationTarget"`
	} `json:"settings"`
}

// CompilerVersion returns the semver triple of the compiler that produced
// the artifact, without any +commit suffix.
func (a *Artifact) CompilerVersion() string {
	v := strings.TrimPrefix(a.Metadata.Compiler.Version, "v")
	if i := strings.IndexByte(v, '+'); i >= 0 {
		v = v[:i]
	}
	return v
}

// SourcePath returns the source file the artifact was compiled from, or ""
// when the metadata does not record a compilation target.
func (a *Artifact) SourcePath() string {
	for path := range a.Metadata.Settings.CompilationTarget {
		return path
	}
	return ""
}
