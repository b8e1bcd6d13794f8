package compiler

import (
	"path/filepath"
	"strings"
)

// FileFilter decides which source files keep full artifact output during a
// sparse compile. Files that are not included still get parsed by the
// toolchain but receive a pruned output selection.
type FileFilter interface {
	IncludedInSparseOutput(path string) bool
}

// SkipFilter excludes matching source files from the build output.
// The value is the substring matched against a file's base name.
type SkipFilter string

const (
	// SkipTests excludes all `.t.sol` contracts.
	SkipTests SkipFilter = ".t.sol"
	// SkipScripts excludes all `.s.sol` contracts.
	SkipScripts SkipFilter = ".s.sol"
)

// CustomSkipFilter excludes files whose base name contains pattern.
func CustomSkipFilter(pattern string) SkipFilter {
	return SkipFilter(pattern)
}

// ParseSkipFilter maps a user-supplied token to a SkipFilter. Unrecognized
// tokens become custom patterns, so parsing never fails.
func ParseSkipFilter(s string) SkipFilter {
	switch s {
	case "test", "tests":
		return SkipTests
	case "script", "scripts":
		return SkipScripts
	default:
		return CustomSkipFilter(s)
	}
}

// Pattern returns the substring matched against a file's base name.
func (f SkipFilter) Pattern() string {
	return string(f)
}

// IncludedInSparseOutput reports whether the file should keep full artifact
// output, i.e. whether the filter's pattern does NOT match its base name.
// A path with no extractable file name is always included, so malformed
// paths are never spuriously excluded.
func (f SkipFilter) IncludedInSparseOutput(path string) bool {
	name, ok := fileName(path)
	if !ok {
		return true
	}
	return !strings.Contains(name, f.Pattern())
}

// SkipFilters bundles multiple SkipFilter values into a single FileFilter.
type SkipFilters []SkipFilter

// ParseSkipFilters parses each token with ParseSkipFilter.
func ParseSkipFilters(tokens []string) SkipFilters {
	if len(tokens) == 0 {
		return nil
	}
	filters := make(SkipFilters, 0, len(tokens))
	for _, tok := range tokens {
		filters = append(filters, ParseSkipFilter(tok))
	}
	return filters
}

// IncludedInSparseOutput includes a file only if every filter includes it:
// a single matching exclusion pattern drops the file from the output set.
func (fs SkipFilters) IncludedInSparseOutput(path string) bool {
	for _, f := range fs {
		if !f.IncludedInSparseOutput(path) {
			return false
		}
	}
	return true
}

// fileName extracts the base name of a path, reporting false for paths
// that have none (empty paths, roots and dot paths).
func fileName(path string) (string, bool) {
	base := filepath.Base(path)
	switch base {
	case "", ".", "..", string(filepath.Separator):
		return "", false
	}
	return base, true
}

var (
	_ FileFilter = SkipFilter("")
	_ FileFilter = SkipFilters(nil)
)
