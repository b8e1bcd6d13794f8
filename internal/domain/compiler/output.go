package compiler

import "sort"

// Output is the artifact set and diagnostics returned by one toolchain run.
type Output struct {
	// Artifacts maps contract name to its compiled artifact.
	Artifacts map[string]*Artifact
	// Diagnostics is the toolchain's output text, verbatim.
	Diagnostics string
	// HasErrors is set when the toolchain reported compiler errors.
	HasErrors bool
	// Unchanged is set when the toolchain's cache decided nothing needed
	// recompiling.
	Unchanged bool
}

// VersionedNames groups contract names by the compiler version that built
// them. Names within a group are sorted.
func (o *Output) VersionedNames() map[string][]string {
	grouped := make(map[string][]string)
	for name, artifact := range o.Artifacts {
		version := artifact.CompilerVersion()
		grouped[version] = append(grouped[version], name)
	}
	for _, names := range grouped {
		sort.Strings(names)
	}
	return grouped
}
