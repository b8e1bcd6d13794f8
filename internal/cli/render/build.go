package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/madrazzl3/solbuild/internal/usecase"
)

// BuildRenderer renders build results: diagnostics, contract names and the
// size table.
type BuildRenderer struct {
	out   io.Writer
	sizes *SizesRenderer
}

// NewBuildRenderer creates a new build result renderer.
func NewBuildRenderer(out io.Writer, useColor bool) *BuildRenderer {
	return &BuildRenderer{
		out:   out,
		sizes: NewSizesRenderer(out, useColor),
	}
}

// RenderBuildResult writes the human-facing view of one build.
func (r *BuildRenderer) RenderBuildResult(result *usecase.BuildResult) error {
	switch result.Outcome {
	case usecase.OutcomeNothingToCompile:
		fmt.Fprintln(r.out, "Nothing to compile")
		return nil
	case usecase.OutcomeUnchanged:
		fmt.Fprintln(r.out, "No files changed, compilation skipped")
	default:
		if diagnostics := strings.TrimSpace(result.Output.Diagnostics); diagnostics != "" {
			fmt.Fprintln(r.out, diagnostics)
		}
	}

	if len(result.VersionedNames) > 0 {
		r.renderNames(result.VersionedNames)
	}

	if result.SizeReport != nil {
		if len(result.VersionedNames) > 0 {
			fmt.Fprintln(r.out)
		}
		return r.sizes.RenderSizeReport(result.SizeReport)
	}

	return nil
}

// renderNames lists compiled contract names grouped by compiler version.
func (r *BuildRenderer) renderNames(versioned map[string][]string) {
	versions := make([]string, 0, len(versioned))
	for version := range versioned {
		versions = append(versions, version)
	}
	sort.Strings(versions)

	for _, version := range versions {
		fmt.Fprintf(r.out, "  compiler version: %s\n", version)
		for _, name := range versioned[version] {
			fmt.Fprintf(r.out, "    - %s\n", name)
		}
	}
}
