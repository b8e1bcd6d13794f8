package compiler

import "errors"

// Sentinel errors for compile operations
var (
	// ErrStandaloneVerify is returned when verification is requested for a
	// target outside the project's dependency graph.
	ErrStandaloneVerify = errors.New("standalone targets cannot be verified: verification requires the file to be part of a resolvable project")

	// ErrSizeLimitExceeded is returned after a successful compile and size
	// report when a non-dev contract is over the EIP-170 limit.
	ErrSizeLimitExceeded = errors.New("contract exceeds the EIP-170 size limit")

	// ErrIncompleteArtifact signals a violated expectation about a compiled
	// artifact, e.g. a matching contract without bytecode fields. It marks a
	// programming-contract violation, not a recoverable condition.
	ErrIncompleteArtifact = errors.New("incomplete compiler artifact")
)

// CompilerError carries the toolchain's full diagnostic text for a failed
// compile. The text is surfaced verbatim and never truncated.
type CompilerError struct {
	Diagnostics string
}

func (e *CompilerError) Error() string {
	return e.Diagnostics
}
