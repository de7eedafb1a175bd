package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/kapilank-k/product-comparator/internal/model"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// Renderer prints comparison reports to a writer
type Renderer struct {
	w io.Writer
}

// NewRenderer creates a renderer targeting w
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// Render prints a labeled report: both raw inputs, the comparison
// table, and the fallback output when present.
func (r *Renderer) Render(rep *model.Report) {
	if rep.PairID != 0 {
		fmt.Fprintf(r.w, "Pair %d\n", rep.PairID)
	}
	fmt.Fprintf(r.w, "String 1: %s\n", rep.Left)
	fmt.Fprintf(r.w, "String 2: %s\n\n", rep.Right)

	if len(rep.Rows) == 0 {
		fmt.Fprintln(r.w, "(no aspects to display)")
	} else {
		fmt.Fprintln(r.w, r.renderTable(rep.Rows))
	}

	if rep.Fallback != nil {
		fmt.Fprintln(r.w)
		fmt.Fprintln(r.w, "LLM Fallback Output:")
		fmt.Fprintln(r.w, rep.Fallback.Output)
	}
	fmt.Fprintln(r.w)
}

func (r *Renderer) renderTable(rows []model.Row) string {
	withStatus := false
	for _, row := range rows {
		if row.Status != "" {
			withStatus = true
			break
		}
	}

	headers := []string{"Aspect", "String 1", "String 2"}
	if withStatus {
		headers = append(headers, "Match Status")
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)

	for _, row := range rows {
		cells := []string{string(row.Aspect), row.Left, row.Right}
		if withStatus {
			cells = append(cells, string(row.Status))
		}
		t.Row(cells...)
	}

	return t.Render()
}

// RenderJSON writes the report as indented JSON to path
func (r *Renderer) RenderJSON(rep *model.Report, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

// RenderJSONAll writes a slice of reports as one indented JSON array to path
func RenderJSONAll(reps []*model.Report, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(reps); err != nil {
		return fmt.Errorf("encode reports: %w", err)
	}
	return nil
}
