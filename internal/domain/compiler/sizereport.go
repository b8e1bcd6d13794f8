package compiler

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/samber/lo"
)

// SizeLimit is the EIP-170 deployed bytecode ceiling in bytes.
// https://eips.ethereum.org/EIPS/eip-170
const SizeLimit = 24576

// Severity bands for presentational emphasis in the size table.
type Severity int

const (
	SeverityNormal Severity = iota
	SeverityWarning
	SeverityCritical
)

// warningThreshold is where a contract starts crowding the size limit.
const warningThreshold = 18000

// SeverityFor classifies a contract size into its display band.
func SeverityFor(size int) Severity {
	switch {
	case size > SizeLimit:
		return SeverityCritical
	case size >= warningThreshold:
		return SeverityWarning
	default:
		return SeverityNormal
	}
}

// ContractInfo records how big a contract is and whether it is a dev
// contract exempt from size-limit enforcement.
type ContractInfo struct {
	// Size of the deployed bytecode in bytes.
	Size int
	// IsDevContract is true for test and script contracts.
	IsDevContract bool
}

// SizeReport maps contract names to their size info for one compile run.
type SizeReport struct {
	Contracts map[string]ContractInfo
}

// BuildSizeReport computes a fresh report from a full artifact set.
func BuildSizeReport(artifacts map[string]*Artifact) *SizeReport {
	report := &SizeReport{Contracts: make(map[string]ContractInfo, len(artifacts))}
	for name, artifact := range artifacts {
		size, _ := DeployedSize(artifact)
		report.Contracts[name] = ContractInfo{
			Size:          size,
			IsDevContract: isDevContract(artifact.ABI),
		}
	}
	return report
}

// SortedNames returns the contract names in deterministic render order.
func (r *SizeReport) SortedNames() []string {
	names := lo.Keys(r.Contracts)
	sort.Strings(names)
	return names
}

// MaxSize returns the size of the largest contract, excluding dev contracts.
func (r *SizeReport) MaxSize() int {
	max := 0
	for _, contract := range r.Contracts {
		if !contract.IsDevContract && contract.Size > max {
			max = contract.Size
		}
	}
	return max
}

// ExceedsSizeLimit reports whether any non-dev contract is over the limit.
func (r *SizeReport) ExceedsSizeLimit() bool {
	return r.MaxSize() > SizeLimit
}

// isDevContract reports whether the ABI exposes a test-style function or one
// of the IS_TEST / IS_SCRIPT marker functions. An artifact without a usable
// ABI is classified as non-dev so it stays subject to size enforcement.
func isDevContract(rawABI json.RawMessage) bool {
	if len(rawABI) == 0 {
		return false
	}
	parsed, err := abi.JSON(bytes.NewReader(rawABI))
	if err != nil {
		return false
	}
	for name := range parsed.Methods {
		if isTestFunction(name) || name == "IS_TEST" || name == "IS_SCRIPT" {
			return true
		}
	}
	return false
}

// isTestFunction matches the forge test-function naming convention.
func isTestFunction(name string) bool {
	return strings.HasPrefix(name, "test") || strings.HasPrefix(name, "invariant")
}
