package compiler

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// Remapping maps an import prefix to a filesystem location.
type Remapping struct {
	Name string
	Path string
}

func (r Remapping) String() string {
	return r.Name + "=" + r.Path
}

// Project describes one compilable source tree and how its artifacts are
// laid out. Values are built per invocation and never shared.
type Project struct {
	// Root is the absolute project root.
	Root string
	// SourcesDir, TestDir and ScriptDir are the input roots, relative to Root.
	SourcesDir string
	TestDir    string
	ScriptDir  string
	// LibDirs are dependency roots, relative to Root.
	LibDirs []string
	// OutDir receives compiler artifacts, relative to Root.
	OutDir string
	// Remappings passed to the compiler.
	Remappings []Remapping
	// SolcVersion pins an exact compiler version; empty selects automatically.
	SolcVersion string
	// Ephemeral projects keep no cache between compiles.
	Ephemeral bool
	// NoArtifacts disables artifact persistence outside the compiler run.
	NoArtifacts bool
}

// InputRoots returns the absolute directories whose files are compiled.
func (p *Project) InputRoots() []string {
	roots := make([]string, 0, 3+len(p.LibDirs))
	for _, dir := range []string{p.SourcesDir, p.TestDir, p.ScriptDir} {
		if dir != "" {
			roots = append(roots, filepath.Join(p.Root, dir))
		}
	}
	for _, dir := range p.LibDirs {
		roots = append(roots, filepath.Join(p.Root, dir))
	}
	return roots
}

// ArtifactsDir returns the absolute artifact output directory.
func (p *Project) ArtifactsDir() string {
	out := p.OutDir
	if out == "" {
		out = "out"
	}
	return filepath.Join(p.Root, out)
}

// HasInputFiles reports whether any Solidity source exists under the
// project's input roots.
func (p *Project) HasInputFiles() bool {
	for _, root := range p.InputRoots() {
		found := false
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if !d.IsDir() && strings.HasSuffix(path, ".sol") {
				found = true
				return filepath.SkipAll
			}
			return nil
		})
		if found {
			return true
		}
	}
	return false
}
