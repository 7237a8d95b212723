package view

import (
	"math"
	"strings"
	"testing"

	"github.com/TonmoyBishwas/web-scanner-sub001/internal/domain/model"
	"github.com/stretchr/testify/assert"
)

func TestRenderEmptyBatch(t *testing.T) {
	v := New()

	lv := v.Render(model.Batch{})

	assert.True(t, lv.Empty)
	assert.Equal(t, "No boxes issued yet. Scan a barcode to begin.", lv.Message)
	assert.Empty(t, lv.Header)
	assert.Empty(t, lv.Total)
	assert.Empty(t, lv.Rows)
	assert.Zero(t, lv.Count)
}

func TestRenderNilBatch(t *testing.T) {
	v := New()

	lv := v.Render(nil)

	assert.True(t, lv.Empty)
	assert.Equal(t, EmptyMessage, lv.Message)
}

func TestRenderSingleBox(t *testing.T) {
	v := New()

	lv := v.Render(model.Batch{
		{Identifier: "A1", DisplayName: "Widget", Weight: 2.5},
	})

	assert.False(t, lv.Empty)
	assert.Empty(t, lv.Message)
	assert.Equal(t, "Issued: 1 box", lv.Header)
	assert.Equal(t, "2.50 kg", lv.Total)
	assert.Equal(t, 1, lv.Count)
	assert.Len(t, lv.Rows, 1)
	assert.Equal(t, "A1-0", lv.Rows[0].Key)
	assert.Equal(t, "Widget", lv.Rows[0].DisplayName)
	assert.Equal(t, "2.5 kg", lv.Rows[0].Weight)
}

func TestRenderMultipleBoxes(t *testing.T) {
	v := New()

	lv := v.Render(model.Batch{
		{Identifier: "A1", DisplayName: "Widget", Weight: 2.5},
		{Identifier: "B2", DisplayName: "Gadget", Weight: 1.25},
	})

	assert.Equal(t, "Issued: 2 boxes", lv.Header)
	assert.Equal(t, "3.75 kg", lv.Total)
	assert.Equal(t, 3.75, lv.TotalWeight)
	assert.Len(t, lv.Rows, 2)
	// Rows keep issuance order.
	assert.Equal(t, "Widget", lv.Rows[0].DisplayName)
	assert.Equal(t, "Gadget", lv.Rows[1].DisplayName)
}

func TestRenderDuplicateIdentifiers(t *testing.T) {
	v := New()

	lv := v.Render(model.Batch{
		{Identifier: "X", DisplayName: "First", Weight: 1},
		{Identifier: "X", DisplayName: "Second", Weight: 2},
	})

	// Both rows render; render identity is qualified by position.
	assert.Len(t, lv.Rows, 2)
	assert.Equal(t, "X-0", lv.Rows[0].Key)
	assert.Equal(t, "X-1", lv.Rows[1].Key)
	assert.NotEqual(t, lv.Rows[0].Key, lv.Rows[1].Key)
	assert.Equal(t, "3.00 kg", lv.Total)
}

func TestRenderZeroWeight(t *testing.T) {
	v := New()

	lv := v.Render(model.Batch{
		{Identifier: "A1", DisplayName: "Widget", Weight: 0},
	})

	assert.Equal(t, "Issued: 1 box", lv.Header)
	assert.Equal(t, "0.00 kg", lv.Total)
	assert.Equal(t, "0 kg", lv.Rows[0].Weight)
}

func TestRenderTotalFormatting(t *testing.T) {
	tests := []struct {
		name    string
		weights []float64
		total   string
	}{
		{"integer total", []float64{1, 2}, "3.00 kg"},
		{"half total", []float64{2.5}, "2.50 kg"},
		{"quarter total", []float64{2.5, 1.25}, "3.75 kg"},
		{"long fraction rounds", []float64{1.005, 1.005}, "2.01 kg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			batch := make(model.Batch, len(tt.weights))
			for i, w := range tt.weights {
				batch[i] = model.Box{Identifier: "B", DisplayName: "Box", Weight: w}
			}

			lv := New().Render(batch)
			assert.Equal(t, tt.total, lv.Total)
		})
	}
}

func TestRenderRowWeightNaturalForm(t *testing.T) {
	tests := []struct {
		weight float64
		want   string
	}{
		{2.5, "2.5 kg"},
		{0, "0 kg"},
		{3, "3 kg"},
		{1.25, "1.25 kg"},
		{0.001, "0.001 kg"},
	}

	for _, tt := range tests {
		lv := New().Render(model.Batch{
			{Identifier: "A", DisplayName: "Box", Weight: tt.weight},
		})
		assert.Equal(t, tt.want, lv.Rows[0].Weight)
	}
}

func TestRenderPreservesOrderAndCount(t *testing.T) {
	batch := model.Batch{
		{Identifier: "C", DisplayName: "Third scanned first", Weight: 3},
		{Identifier: "A", DisplayName: "First scanned second", Weight: 1},
		{Identifier: "B", DisplayName: "Second scanned third", Weight: 2},
	}

	lv := New().Render(batch)

	assert.Len(t, lv.Rows, len(batch))
	for i, box := range batch {
		assert.Equal(t, box.DisplayName, lv.Rows[i].DisplayName)
	}
}

func TestRenderTruncatesLongNames(t *testing.T) {
	v := New(WithNameWidth(10))

	lv := v.Render(model.Batch{
		{Identifier: "A", DisplayName: "A very long item name indeed", Weight: 1},
		{Identifier: "B", DisplayName: "Short", Weight: 1},
	})

	assert.Equal(t, "A very lo…", lv.Rows[0].DisplayName)
	assert.Len(t, []rune(lv.Rows[0].DisplayName), 10)
	assert.Equal(t, "Short", lv.Rows[1].DisplayName)
}

func TestRenderTruncationIsRuneAware(t *testing.T) {
	v := New(WithNameWidth(6))

	lv := v.Render(model.Batch{
		{Identifier: "A", DisplayName: "Caixão de parafusos", Weight: 1},
	})

	assert.Equal(t, "Caixã…", lv.Rows[0].DisplayName)
}

func TestRenderUnguardedWeightPropagates(t *testing.T) {
	// Malformed weights are not validated; they flow into the aggregate.
	lv := New().Render(model.Batch{
		{Identifier: "A", DisplayName: "Bad scale reading", Weight: math.NaN()},
		{Identifier: "B", DisplayName: "Fine", Weight: 1},
	})

	assert.True(t, math.IsNaN(lv.TotalWeight))
	assert.Len(t, lv.Rows, 2)
}

func TestRenderIsPure(t *testing.T) {
	batch := model.Batch{
		{Identifier: "A1", DisplayName: "Widget", Weight: 2.5},
	}

	v := New()
	first := v.Render(batch)
	second := v.Render(batch)

	assert.Equal(t, first, second)
	// Input is untouched.
	assert.Equal(t, "Widget", batch[0].DisplayName)
}

func TestRenderText(t *testing.T) {
	v := New()

	out := v.RenderText(model.Batch{
		{Identifier: "A1", DisplayName: "Widget", Weight: 2.5},
		{Identifier: "B2", DisplayName: "Gadget", Weight: 1.25},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, []string{
		"Issued: 2 boxes",
		"Total: 3.75 kg",
		"Widget  2.5 kg",
		"Gadget  1.25 kg",
	}, lines)
}

func TestRenderTextEmpty(t *testing.T) {
	out := New().RenderText(nil)
	assert.Equal(t, EmptyMessage+"\n", out)
}

func TestBatchTotalWeight(t *testing.T) {
	batch := model.Batch{
		{Weight: 2.5},
		{Weight: 1.25},
		{Weight: 0.25},
	}
	assert.Equal(t, 4.0, batch.TotalWeight())
	assert.Equal(t, 0.0, model.Batch{}.TotalWeight())
}
