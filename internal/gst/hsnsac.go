package gst

import (
	"regexp"
	"strings"
)

// Classification tags returned in HSNSACValidationResult.Type.
const (
	CodeHSN = "HSN"
	CodeSAC = "SAC"
)

// DefaultSuggestedRate is the slab proposed for a code without master data.
const DefaultSuggestedRate = 18.0

var (
	hsnPattern = regexp.MustCompile(`^\d{2,8}$`)
	sacPattern = regexp.MustCompile(`^99\d{4}$`)
)

// HSNSACValidationResult is the outcome of ValidateHSNSAC.
type HSNSACValidationResult struct {
	IsValid          bool    `json:"is_valid"`
	Type             string  `json:"validation_type,omitempty"`
	Code             string  `json:"code,omitempty"`
	Description      string  `json:"description,omitempty"`
	SuggestedGSTRate float64 `json:"suggested_gst_rate,omitempty"`
	Error            string  `json:"error,omitempty"`
}

// ValidateHSNSAC classifies a goods (HSN) or services (SAC) code without
// knowing what the code is attached to. A six digit code starting with 99
// is reported as SAC; every other 2 to 8 digit code is HSN.
func ValidateHSNSAC(code string) HSNSACValidationResult {
	return ValidateHSNSACForSupply(code, "")
}

// ValidateHSNSACForSupply is ValidateHSNSAC with the nature of the supply
// known. For goods the broad HSN pattern takes precedence, so a six digit
// 99xxxx goods code stays HSN.
func ValidateHSNSACForSupply(code string, supply SupplyType) HSNSACValidationResult {
	code = strings.TrimSpace(code)
	if code == "" {
		return HSNSACValidationResult{Error: "HSN/SAC code is required"}
	}

	isHSN := hsnPattern.MatchString(code)
	isSAC := sacPattern.MatchString(code)

	switch {
	case isSAC && supply != SupplyGoods:
		return HSNSACValidationResult{
			IsValid:          true,
			Type:             CodeSAC,
			Code:             code,
			Description:      "SAC code for services",
			SuggestedGSTRate: DefaultSuggestedRate,
		}
	case isHSN:
		return HSNSACValidationResult{
			IsValid:          true,
			Type:             CodeHSN,
			Code:             code,
			Description:      "HSN code for goods",
			SuggestedGSTRate: DefaultSuggestedRate,
		}
	default:
		return HSNSACValidationResult{
			Error: "Invalid HSN/SAC code: expected 2-8 digit HSN or 6-digit SAC starting with 99",
		}
	}
}
