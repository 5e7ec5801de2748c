package gst

import "errors"

var (
	ErrInvalidGSTRate   = errors.New("gst rate must be one of 0, 5, 12, 18, 28")
	ErrInvalidQuantity  = errors.New("quantity must be greater than zero")
	ErrInvalidUnitPrice = errors.New("unit price cannot be negative")
	ErrInvalidDiscount  = errors.New("discount percent must be between 0 and 100")
	ErrInvalidAmount    = errors.New("amount must be a finite number")
	ErrNoLineItems      = errors.New("at least one line item is required")
)
