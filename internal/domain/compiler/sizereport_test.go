package compiler

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func abiWithFunctions(names ...string) json.RawMessage {
	entries := make([]string, 0, len(names))
	for _, name := range names {
		entries = append(entries, fmt.Sprintf(
			`{"type":"function","name":%q,"inputs":[],"outputs":[],"stateMutability":"view"}`, name))
	}
	return json.RawMessage("[" + strings.Join(entries, ",") + "]")
}

func sizedArtifact(size int, abi json.RawMessage) *Artifact {
	return &Artifact{
		ABI:              abi,
		DeployedBytecode: BytecodeObject{Object: "0x" + strings.Repeat("60", size)},
	}
}

func TestSeverityBands(t *testing.T) {
	assert.Equal(t, SeverityNormal, SeverityFor(0))
	assert.Equal(t, SeverityNormal, SeverityFor(17999))
	assert.Equal(t, SeverityWarning, SeverityFor(18000))
	assert.Equal(t, SeverityWarning, SeverityFor(SizeLimit))
	assert.Equal(t, SeverityCritical, SeverityFor(SizeLimit+1))
}

func TestBuildSizeReportClassification(t *testing.T) {
	tests := []struct {
		name    string
		abi     json.RawMessage
		wantDev bool
	}{
		{"plain contract", abiWithFunctions("transfer", "balanceOf"), false},
		{"test contract by convention", abiWithFunctions("testIncrement", "setUp"), true},
		{"test fail function", abiWithFunctions("testFailDecrement"), true},
		{"invariant contract", abiWithFunctions("invariantSolvency"), true},
		{"forge-std test marker", abiWithFunctions("run", "IS_TEST"), true},
		{"forge-std script marker", abiWithFunctions("run", "IS_SCRIPT"), true},
		{"no abi", nil, false},
		{"unparseable abi", json.RawMessage("{"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := BuildSizeReport(map[string]*Artifact{"C": sizedArtifact(100, tt.abi)})
			assert.Equal(t, tt.wantDev, report.Contracts["C"].IsDevContract)
			assert.Equal(t, 100, report.Contracts["C"].Size)
		})
	}
}

func TestSizeReportMaxSizeIgnoresDevContracts(t *testing.T) {
	report := BuildSizeReport(map[string]*Artifact{
		"Token":       sizedArtifact(20000, abiWithFunctions("transfer")),
		"TokenTest":   sizedArtifact(50000, abiWithFunctions("IS_TEST")),
		"DeployToken": sizedArtifact(30000, abiWithFunctions("run", "IS_SCRIPT")),
	})

	assert.Equal(t, 20000, report.MaxSize())
	assert.False(t, report.ExceedsSizeLimit())
}

func TestSizeReportExceedsSizeLimit(t *testing.T) {
	t.Run("non-dev contract over limit", func(t *testing.T) {
		report := BuildSizeReport(map[string]*Artifact{
			"Token": sizedArtifact(30000, abiWithFunctions("transfer")),
		})
		assert.True(t, report.ExceedsSizeLimit())
	})

	t.Run("exactly at limit passes", func(t *testing.T) {
		report := BuildSizeReport(map[string]*Artifact{
			"Token": sizedArtifact(SizeLimit, abiWithFunctions("transfer")),
		})
		assert.False(t, report.ExceedsSizeLimit())
	})

	t.Run("only dev contracts over limit pass", func(t *testing.T) {
		report := BuildSizeReport(map[string]*Artifact{
			"BigTest": sizedArtifact(50000, abiWithFunctions("IS_TEST")),
		})
		assert.False(t, report.ExceedsSizeLimit())
	})
}

func TestSizeReportSortedNames(t *testing.T) {
	report := BuildSizeReport(map[string]*Artifact{
		"Charlie": sizedArtifact(1, nil),
		"alpha":   sizedArtifact(2, nil),
		"Bravo":   sizedArtifact(3, nil),
	})
	assert.Equal(t, []string{"Bravo", "Charlie", "alpha"}, report.SortedNames())
}
