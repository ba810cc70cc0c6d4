// Package dto defines the request and response bodies of the HTTP API.
package dto

import (
	"bytes"
	"encoding/json"
	"unicode/utf8"
)

// MaxClientNameLength bounds the client name printed on receipts.
const MaxClientNameLength = 100

// Body keys that carry the client name rather than an item.
var clientNameKeys = []string{"client_name", "cliente"}

// QuoteRequest is the body of POST /api/optimize.
//
// Two shapes are accepted: {"items": {"shirt": 8}, "client_name": "Maria"}
// and the flat form {"shirt": 8, "cliente": "Maria"} sent by older clients.
// Item values are kept undecoded (json.Number for numbers) so the order
// normalizer can report exactly what was sent.
//
// @Description Order to price
type QuoteRequest struct {
	// Items maps item keys (or legacy aliases) to quantities.
	Items map[string]any `json:"items" swaggertype:"object,integer" example:"variable_piece:15,shirt:8,towel_or_sheet:5,duvet_cover:2"`
	// ClientName is printed on the receipt.
	ClientName string `json:"client_name,omitempty" example:"Maria Silva"`
} // @name QuoteRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrBodyNotObject is returned when the body is not a JSON object.
	ErrBodyNotObject = &ValidationError{Field: "body", Message: "must be a JSON object"}
	// ErrItemsNotObject is returned when "items" is present but not an object.
	ErrItemsNotObject = &ValidationError{Field: "items", Message: "must be an object of quantities"}
	// ErrInvalidClientName is returned for a non-string client name.
	ErrInvalidClientName = &ValidationError{Field: "client_name", Message: "must be a string"}
	// ErrClientNameTooLong is returned for client names above MaxClientNameLength.
	ErrClientNameTooLong = &ValidationError{Field: "client_name", Message: "must be at most 100 characters"}
)

// UnmarshalJSON accepts both the wrapped and the flat body.
func (r *QuoteRequest) UnmarshalJSON(data []byte) error {
	var body map[string]any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		return err
	}
	if body == nil {
		return ErrBodyNotObject
	}

	r.ClientName = ""
	for _, key := range clientNameKeys {
		v, ok := body[key]
		if !ok {
			continue
		}
		delete(body, key)
		if v == nil {
			continue
		}
		name, isString := v.(string)
		if !isString {
			return ErrInvalidClientName
		}
		if r.ClientName == "" {
			r.ClientName = name
		}
	}

	raw, wrapped := body["items"]
	if !wrapped {
		r.Items = body
		return nil
	}
	if raw == nil {
		r.Items = map[string]any{}
		return nil
	}
	items, ok := raw.(map[string]any)
	if !ok {
		return ErrItemsNotObject
	}
	r.Items = items
	return nil
}

// Validate checks the parts of the request the order normalizer does not.
func (r *QuoteRequest) Validate() error {
	if utf8.RuneCountInString(r.ClientName) > MaxClientNameLength {
		return ErrClientNameTooLong
	}
	if r.Items == nil {
		r.Items = map[string]any{}
	}
	return nil
}
