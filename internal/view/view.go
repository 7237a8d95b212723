// Package view renders an issued-box batch into a displayable summary and
// item list. Rendering is a pure function of its input: no state is kept
// between calls and the aggregate is recomputed on every call.
package view

import (
	"strconv"
	"strings"

	"github.com/TonmoyBishwas/web-scanner-sub001/internal/domain/model"
)

const (
	// EmptyMessage is shown when no boxes have been issued yet.
	EmptyMessage = "No boxes issued yet. Scan a barcode to begin."

	// DefaultNameWidth is the default display width for item names, in runes.
	DefaultNameWidth = 32

	// ellipsis marks a truncated item name.
	ellipsis = "…"
)

// Row is a single rendered list item.
//
// @Description Rendered row for one issued box
// @Example {"key": "A1-0", "display_name": "Widget", "weight": "2.5 kg"}
type Row struct {
	// Key is the render identity of the row: the box identifier qualified by
	// its position in the batch. Duplicate identifiers stay distinct rows.
	Key string `json:"key" example:"A1-0"`
	// DisplayName is the item label, truncated with an ellipsis when it
	// exceeds the configured width.
	DisplayName string `json:"display_name" example:"Widget"`
	// Weight is the row weight in its natural numeric form with unit.
	Weight string `json:"weight" example:"2.5 kg"`
}

// ListView is the complete rendered output for a batch.
//
// @Description Rendered box list: either the empty-state message, or a
// header plus total plus rows in issuance order.
type ListView struct {
	// Empty reports whether the batch had no boxes.
	Empty bool `json:"empty"`
	// Message is the empty-state message; set only when Empty is true.
	Message string `json:"message,omitempty" example:"No boxes issued yet. Scan a barcode to begin."`
	// Header is the count line, e.g. "Issued: 2 boxes".
	Header string `json:"header,omitempty" example:"Issued: 2 boxes"`
	// Count is the number of rendered rows.
	Count int `json:"count" example:"2"`
	// TotalWeight is the numeric aggregate, for machine consumers.
	TotalWeight float64 `json:"total_weight" example:"3.75"`
	// Total is the aggregate formatted to exactly two decimals with unit.
	Total string `json:"total,omitempty" example:"3.75 kg"`
	// Rows holds one entry per box, in issuance order.
	Rows []Row `json:"rows,omitempty"`
} // @name BoxListView

// BoxListView renders batches. The zero value is not usable; construct
// with New.
type BoxListView struct {
	nameWidth int
}

// Option configures a BoxListView.
type Option func(*BoxListView)

// WithNameWidth sets the display width, in runes, past which item names
// are truncated. Non-positive values fall back to DefaultNameWidth.
func WithNameWidth(width int) Option {
	return func(v *BoxListView) {
		if width > 0 {
			v.nameWidth = width
		}
	}
}

// New creates a BoxListView renderer with the given options.
func New(opts ...Option) *BoxListView {
	v := &BoxListView{nameWidth: DefaultNameWidth}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Render produces the list view for a batch. The empty batch yields only
// the empty-state message; anything else yields a header, the two-decimal
// total, and one row per box in input order. Rows are never deduplicated
// or reordered, and box weights are not validated.
func (v *BoxListView) Render(batch model.Batch) ListView {
	if len(batch) == 0 {
		return ListView{
			Empty:   true,
			Message: EmptyMessage,
		}
	}

	rows := make([]Row, len(batch))
	for i, box := range batch {
		rows[i] = Row{
			Key:         box.Identifier + "-" + strconv.Itoa(i),
			DisplayName: v.truncate(box.DisplayName),
			Weight:      FormatRowWeight(box.Weight),
		}
	}

	total := batch.TotalWeight()
	return ListView{
		Count:       len(batch),
		Header:      header(len(batch)),
		TotalWeight: total,
		Total:       FormatTotalWeight(total),
		Rows:        rows,
	}
}

// RenderText produces a plain-text rendering of the same view, one row per
// line, for terminal display.
func (v *BoxListView) RenderText(batch model.Batch) string {
	lv := v.Render(batch)
	if lv.Empty {
		return lv.Message + "\n"
	}

	var b strings.Builder
	b.WriteString(lv.Header)
	b.WriteString("\n")
	b.WriteString("Total: ")
	b.WriteString(lv.Total)
	b.WriteString("\n")
	for _, row := range lv.Rows {
		b.WriteString(row.DisplayName)
		b.WriteString("  ")
		b.WriteString(row.Weight)
		b.WriteString("\n")
	}
	return b.String()
}

// header builds the count line with correct pluralization: singular for
// exactly one box, plural otherwise.
func header(count int) string {
	noun := "boxes"
	if count == 1 {
		noun = "box"
	}
	return "Issued: " + strconv.Itoa(count) + " " + noun
}

// FormatTotalWeight formats the aggregate weight to exactly two decimal
// places with the kg unit, e.g. "3.75 kg", "0.00 kg".
func FormatTotalWeight(total float64) string {
	return strconv.FormatFloat(total, 'f', 2, 64) + " kg"
}

// FormatRowWeight formats a single row weight in its natural numeric form
// with the kg unit, e.g. "2.5 kg", "0 kg". Per-row weights deliberately do
// not share the two-decimal formatting of the total.
func FormatRowWeight(weight float64) string {
	return strconv.FormatFloat(weight, 'f', -1, 64) + " kg"
}

// truncate shortens a name to the configured rune width, appending an
// ellipsis when anything was cut.
func (v *BoxListView) truncate(name string) string {
	runes := []rune(name)
	if len(runes) <= v.nameWidth {
		return name
	}
	return string(runes[:v.nameWidth-1]) + ellipsis
}
