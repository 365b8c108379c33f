// Package report renders profilectl output for terminals: segment tables
// and coloured status lines.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/cellprof/dtw"
	"github.com/katalvlaran/cellprof/segment"
	"github.com/katalvlaran/cellprof/segmented"
)

var (
	okColor   = color.New(color.FgGreen, color.Bold)
	failColor = color.New(color.FgRed, color.Bold)
	dimColor  = color.New(color.Faint)
)

// SetColor turns coloured output on or off for the whole process.
func SetColor(enabled bool) {
	color.NoColor = !enabled //nolint:reassign // library switch
}

// Segments writes a table of the partition of sp in ring order.
func Segments(w io.Writer, sp *segmented.Profile) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"#", "Name", "ID", "Start", "End", "Length", "Locked", "Sources"})

	names := sp.SegmentNames()
	for i, s := range sp.Segments() {
		tbl.AppendRow(table.Row{i, names[i], string(s.ID()), s.Start(), s.End(), s.Length(), lockMark(s), sources(s)})
	}
	tbl.AppendFooter(table.Row{"", "", fmt.Sprintf("Total: %d segments", sp.SegmentCount()), "", "", sp.Size(), "", ""})
	tbl.Render()
}

func lockMark(s *segment.Segment) string {
	if s.IsLocked() {
		return "yes"
	}

	return ""
}

// sources lists the direct merge sources of s.
func sources(s *segment.Segment) string {
	srcs := s.MergeSources()
	if len(srcs) == 0 {
		return dimColor.Sprint("-")
	}
	ids := make([]string, len(srcs))
	for i, src := range srcs {
		ids[i] = string(src.ID())
	}

	return strings.Join(ids, ", ")
}

// Comparison writes the result of a profile comparison.
func Comparison(w io.Writer, c dtw.Comparison) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendRow(table.Row{"Offset", c.Offset})
	tbl.AppendRow(table.Row{"DTW distance", fmt.Sprintf("%.6g", c.Distance)})
	tbl.Render()
}

// Success writes a green check line.
func Success(w io.Writer, format string, args ...any) {
	okColor.Fprint(w, "✓ ")
	fmt.Fprintf(w, format+"\n", args...)
}

// Failure writes a red cross line.
func Failure(w io.Writer, format string, args ...any) {
	failColor.Fprint(w, "✗ ")
	fmt.Fprintf(w, format+"\n", args...)
}
