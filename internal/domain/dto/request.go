// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import "strings"

// ScanRequest represents the JSON request body for the scan endpoint.
//
// The Barcode field is required and must be non-empty after trimming.
// Validation is performed using gin's binding tags plus Validate.
//
// @Description Request to issue the box behind a scanned barcode
// @Example {"barcode": "A1"}
type ScanRequest struct {
	// Barcode is the scanned barcode token identifying a catalog box.
	Barcode string `json:"barcode" binding:"required" example:"A1" minLength:"1"`
} // @name ScanRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

var (
	// ErrInvalidBarcode is returned when barcode is missing or blank.
	ErrInvalidBarcode = &ValidationError{
		Field:   "barcode",
		Message: "must be a non-empty string",
	}
	// ErrInvalidWeight is returned when a catalog weight is negative.
	ErrInvalidWeight = &ValidationError{
		Field:   "weight",
		Message: "must be zero or positive",
	}
	// ErrInvalidDisplayName is returned when a catalog display name is blank.
	ErrInvalidDisplayName = &ValidationError{
		Field:   "display_name",
		Message: "must be a non-empty string",
	}
)

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate performs custom validation on the scan request.
// Returns an error if validation fails, nil otherwise.
func (r *ScanRequest) Validate() error {
	if strings.TrimSpace(r.Barcode) == "" {
		return ErrInvalidBarcode
	}
	return nil
}

// CreateBoxRequest represents the JSON request body for adding a box to the catalog.
//
// @Description Request to register a box type in the catalog
// @Example {"identifier": "A1", "display_name": "Widget", "weight": 2.5}
type CreateBoxRequest struct {
	// Barcode is the scan token the box answers to. Defaults to Identifier
	// when omitted.
	Barcode string `json:"barcode,omitempty" example:"A1"`
	// Identifier is the display identity of the box within a batch.
	Identifier string `json:"identifier" binding:"required" example:"A1"`
	// DisplayName is the human-readable item label.
	DisplayName string `json:"display_name" binding:"required" example:"Widget"`
	// Weight is the box weight in kilograms; must not be negative.
	Weight float64 `json:"weight" example:"2.5" minimum:"0"`
	// CreatedBy is the identifier of who registered this box.
	CreatedBy string `json:"created_by,omitempty"`
} // @name CreateBoxRequest

// Validate performs custom validation on the create box request.
// The rendering layer is deliberately unguarded, so malformed records are
// rejected here, at the collaborator boundary.
func (r *CreateBoxRequest) Validate() error {
	if strings.TrimSpace(r.Identifier) == "" {
		return ErrInvalidBarcode
	}
	if strings.TrimSpace(r.DisplayName) == "" {
		return ErrInvalidDisplayName
	}
	if r.Weight < 0 {
		return ErrInvalidWeight
	}
	return nil
}

// UpdateBoxRequest represents the JSON request body for updating a catalog box.
//
// @Description Request to update a catalog box's mutable fields
type UpdateBoxRequest struct {
	// DisplayName is the human-readable item label.
	DisplayName string `json:"display_name" binding:"required" example:"Widget"`
	// Weight is the box weight in kilograms; must not be negative.
	Weight float64 `json:"weight" example:"2.5" minimum:"0"`
	// UpdatedBy is the identifier of who changed this box.
	UpdatedBy string `json:"updated_by,omitempty"`
} // @name UpdateBoxRequest

// Validate performs custom validation on the update box request.
func (r *UpdateBoxRequest) Validate() error {
	if strings.TrimSpace(r.DisplayName) == "" {
		return ErrInvalidDisplayName
	}
	if r.Weight < 0 {
		return ErrInvalidWeight
	}
	return nil
}
