// SPDX-License-Identifier: MIT

// Package hybrid - markdown table rendering of graph trees and factor graphs.

package hybrid

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/katalvlaran/lvhybrid/keys"
)

// FormatTree renders one row per assignment of tree: the discrete values,
// the number of linear terms and the constant of the selected hypothesis.
// A path that does not branch on some label shows "*" for it.
func FormatTree(tree GaussianFactorGraphTree, opts ...FormatOption) string {
	o := defaultFormatOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if tree.IsEmpty() {
		return "_Empty tree_"
	}

	labels := tree.Labels()
	headers := make([]string, 0, len(labels)+2)
	for _, dk := range labels {
		headers = append(headers, o.keyFormatter(dk.Key))
	}
	headers = append(headers, "factors", "constant")

	var rows [][]string
	tree.VisitAssignments(func(vals keys.DiscreteValues, gc GraphAndConstant) {
		row := make([]string, 0, len(headers))
		for _, dk := range labels {
			if v, ok := vals[dk.Key]; ok {
				row = append(row, strconv.Itoa(v))
			} else {
				row = append(row, "*")
			}
		}
		row = append(row,
			strconv.Itoa(gc.Graph().Len()),
			strconv.FormatFloat(gc.Constant(), 'g', -1, 64))
		rows = append(rows, row)
	})

	var sb strings.Builder
	sb.WriteString(renderTable(headers, rows, o))
	fmt.Fprintf(&sb, "\n_%d assignments, %d distinct leaves_\n", len(rows), tree.NrLeaves())

	return sb.String()
}

// FormatFactorGraph renders one row per factor: index, kind, continuous keys
// and discrete keys.
func FormatFactorGraph(fg *FactorGraph, opts ...FormatOption) string {
	o := defaultFormatOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if fg == nil || fg.Size() == 0 {
		return "_Empty graph_"
	}

	headers := []string{"#", "kind", "continuous", "discrete"}
	rows := make([][]string, 0, fg.Size())
	for i, f := range fg.factors {
		dks := f.DiscreteKeys()
		parts := make([]string, len(dks))
		for j, dk := range dks {
			parts[j] = o.keyFormatter(dk.Key) + "(" + strconv.Itoa(dk.Cardinality) + ")"
		}
		rows = append(rows, []string{
			strconv.Itoa(i),
			f.Kind().String(),
			f.ContinuousKeys().Format(o.keyFormatter),
			strings.Join(parts, " "),
		})
	}

	var sb strings.Builder
	sb.WriteString(renderTable(headers, rows, o))
	fmt.Fprintf(&sb, "\n_%d factors_\n", len(rows))

	return sb.String()
}

// renderTable writes a markdown table with unformatted (verbatim) headers.
func renderTable(headers []string, rows [][]string, o formatOptions) string {
	out := &strings.Builder{}

	alignment := make([]tw.Align, len(headers))
	for i := range alignment {
		alignment[i] = tw.AlignNone
	}
	table := tablewriter.NewTable(out,
		tablewriter.WithRenderer(renderer.NewMarkdown()),
		tablewriter.WithAlignment(alignment),
		tablewriter.WithHeaderAutoFormat(tw.Off),
	)

	shown := make([]string, len(headers))
	for i, h := range headers {
		shown[i] = o.header(h)
	}
	table.Header(shown)
	for _, row := range rows {
		table.Append(row)
	}
	table.Render()

	return out.String()
}

// header colors a header cell when color output is enabled.
func (o formatOptions) header(s string) string {
	if !o.color {
		return s
	}
	c := color.New(color.FgCyan, color.Bold)
	c.EnableColor()

	return c.Sprint(s)
}
