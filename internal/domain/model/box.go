// Package model defines the core domain entities for the box issuance service.
package model

// Box represents a single physical box issued within a scanning session.
//
// @Description Box record resolved from a scanned barcode
// @Example {"identifier": "A1", "display_name": "Widget", "weight": 2.5}
type Box struct {
	// Identifier is the opaque barcode token identifying the unit.
	// It is unique within a batch only in combination with its position.
	Identifier string `json:"identifier" example:"A1"`
	// DisplayName is the human-readable label for the item.
	DisplayName string `json:"display_name" example:"Widget"`
	// Weight is the box weight in kilograms.
	Weight float64 `json:"weight" example:"2.5"`
}

// Batch is an ordered sequence of issued boxes. Order is issuance order
// and is meaningful for display; the aggregate does not depend on it.
type Batch []Box

// TotalWeight returns the sum of weights across the batch, left to right,
// using plain floating-point addition. No caching: callers recompute on
// every change to the batch.
func (b Batch) TotalWeight() float64 {
	var total float64
	for _, box := range b {
		total += box.Weight
	}
	return total
}

// Clone returns a copy of the batch so callers cannot mutate the original.
func (b Batch) Clone() Batch {
	if b == nil {
		return nil
	}
	out := make(Batch, len(b))
	copy(out, b)
	return out
}
