// Package report renders a compare.Report for the terminal or for machines.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/knapsack/compare"
)

// Format selects the rendering.
type Format string

const (
	// Plain is a fixed-width ASCII table.
	Plain Format = "plain"
	// Table is a bordered, styled lipgloss table.
	Table Format = "table"
	// JSON is the report as one JSON object.
	JSON Format = "json"
)

// ErrUnknownFormat indicates an unsupported Format.
var ErrUnknownFormat = errors.New("report: unknown format")

const title = "--- Warehouse Packing Optimization: Max Value Comparison ---"

// Method labels, one row each.
const (
	labelDP         = "0/1 Knapsack (DP)"
	labelFractional = "Fractional Knapsack (G)"
	labelBB         = "0/1 Knapsack (B&B)"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#874BFD"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FF99")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#64748B"))
)

// Write renders rep to w in format f.
func Write(w io.Writer, rep compare.Report, f Format) error {
	switch f {
	case Plain:
		return writePlain(w, rep)
	case Table:
		return writeTable(w, rep)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(rep)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

func rows(rep compare.Report) [][]string {
	return [][]string{
		{labelDP, strconv.Itoa(rep.DP)},
		{labelFractional, strconv.FormatFloat(rep.Fractional, 'f', 2, 64)},
		{labelBB, strconv.Itoa(rep.BranchAndBound)},
	}
}

func writePlain(w io.Writer, rep compare.Report) error {
	const rule = "|-------------------------|----------------------|\n"
	if _, err := fmt.Fprintf(w, "%s\n", title); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "| %-23s | %-20s |\n", "Method", "Max Achievable Value"); err != nil {
		return err
	}
	if _, err := io.WriteString(w, rule); err != nil {
		return err
	}
	for _, r := range rows(rep) {
		if _, err := fmt.Fprintf(w, "| %-23s | %-20s |\n", r[0], r[1]); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, rule); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Selected (DP): %v  Selected (B&B): %v  B&B nodes: %d, pruned: %d\n",
		rep.DPItems, rep.BBItems, rep.BBStats.Nodes, rep.BBStats.Pruned)

	return err
}

func writeTable(w io.Writer, rep compare.Report) error {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("Method", "Max Achievable Value").
		Rows(rows(rep)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}

			return cellStyle
		})

	_, err := fmt.Fprintf(w, "%s\n%s\n", titleStyle.Render(title), t.Render())

	return err
}
