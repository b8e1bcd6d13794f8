package render

import (
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/madrazzl3/solbuild/internal/domain/compiler"
)

var (
	headerStyle   = color.New(color.FgBlue, color.Bold)
	warningStyle  = color.New(color.FgYellow)
	criticalStyle = color.New(color.FgRed)
)

// SizesRenderer renders a SizeReport as a markdown-style table.
type SizesRenderer struct {
	out   io.Writer
	color bool
}

// NewSizesRenderer creates a new size table renderer.
func NewSizesRenderer(out io.Writer, useColor bool) *SizesRenderer {
	return &SizesRenderer{out: out, color: useColor}
}

// RenderSizeReport writes the size table. Dev contracts and zero-size
// (interface-only) contracts are omitted as noise.
func (r *SizesRenderer) RenderSizeReport(report *compiler.SizeReport) error {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.AppendHeader(table.Row{
		r.styled(headerStyle, "Contract"),
		r.styled(headerStyle, "Size (kB)"),
		r.styled(headerStyle, "Margin (kB)"),
	})

	for _, name := range report.SortedNames() {
		info := report.Contracts[name]
		if info.IsDevContract || info.Size == 0 {
			continue
		}

		style := severityStyle(compiler.SeverityFor(info.Size))
		margin := compiler.SizeLimit - info.Size
		t.AppendRow(table.Row{
			r.styled(style, name),
			r.styled(style, formatKB(info.Size)),
			r.styled(style, formatKB(margin)),
		})
	}

	t.RenderMarkdown()
	return nil
}

// styled applies the style when color output is enabled.
func (r *SizesRenderer) styled(style *color.Color, s string) string {
	if !r.color || style == nil {
		return s
	}
	return style.Sprint(s)
}

// severityStyle maps a display band to its emphasis color.
func severityStyle(severity compiler.Severity) *color.Color {
	switch severity {
	case compiler.SeverityWarning:
		return warningStyle
	case compiler.SeverityCritical:
		return criticalStyle
	default:
		return nil
	}
}

// formatKB renders a byte count as kilobytes, trimming trailing zeros the
// same way the size and margin read in forge's own table.
func formatKB(bytes int) string {
	return strconv.FormatFloat(float64(bytes)/1000.0, 'f', -1, 64)
}
