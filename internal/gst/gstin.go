package gst

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	gstinLength      = 15
	checksumAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	checksumModulus  = 37
)

var (
	gstinPattern = regexp.MustCompile(`^[0-9]{2}[0-9A-Z]{10}[0-9][A-Z][0-9A-Z]$`)
	panPattern   = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
)

// GSTINValidationResult is the outcome of ValidateGSTIN. On failure only
// IsValid and Error are populated.
type GSTINValidationResult struct {
	IsValid      bool   `json:"is_valid"`
	StateCode    string `json:"state_code,omitempty"`
	StateName    string `json:"state_name,omitempty"`
	PANNumber    string `json:"pan_number,omitempty"`
	EntityNumber string `json:"entity_number,omitempty"`
	CheckDigit   string `json:"check_digit,omitempty"`
	Error        string `json:"error,omitempty"`
}

func invalidGSTIN(msg string) GSTINValidationResult {
	return GSTINValidationResult{Error: msg}
}

// NormalizeGSTIN strips all whitespace and upper-cases the identifier.
func NormalizeGSTIN(raw string) string {
	return strings.ToUpper(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw))
}

// ValidateGSTIN checks a GSTIN and, when it is valid, returns its parts.
// Checks run in a fixed order and the first failure is reported.
func ValidateGSTIN(raw string) GSTINValidationResult {
	gstin := NormalizeGSTIN(raw)
	if gstin == "" {
		return invalidGSTIN("GSTIN is required")
	}
	if len(gstin) != gstinLength {
		return invalidGSTIN("GSTIN must be exactly 15 characters")
	}
	if !gstinPattern.MatchString(gstin) {
		return invalidGSTIN("Invalid GSTIN format")
	}

	stateCode := gstin[0:2]
	pan := gstin[2:12]
	entity := gstin[12:13]
	check := gstin[13:15]

	state, ok := LookupState(stateCode)
	if !ok {
		return invalidGSTIN("Invalid state code in GSTIN")
	}
	if !panPattern.MatchString(pan) {
		return invalidGSTIN("Invalid PAN format within GSTIN")
	}
	if !verifyChecksum(gstin) {
		return invalidGSTIN("Invalid GSTIN checksum")
	}

	return GSTINValidationResult{
		IsValid:      true,
		StateCode:    stateCode,
		StateName:    state.Name,
		PANNumber:    pan,
		EntityNumber: entity,
		CheckDigit:   check,
	}
}

// verifyChecksum walks the first 14 characters right to left with weights
// 2,1,2,... and compares the folded mod-37 sum with the last character.
// An expected value of 36 has no symbol and never matches.
func verifyChecksum(gstin string) bool {
	if len(gstin) != gstinLength {
		return false
	}
	factor := 2
	sum := 0
	for i := gstinLength - 2; i >= 0; i-- {
		idx := strings.IndexByte(checksumAlphabet, gstin[i])
		if idx < 0 {
			return false
		}
		d := factor * idx
		d = d/checksumModulus + d%checksumModulus
		sum += d
		if factor == 2 {
			factor = 1
		} else {
			factor = 2
		}
	}
	expected := (checksumModulus - sum%checksumModulus) % checksumModulus

	actual := strings.IndexByte(checksumAlphabet, gstin[gstinLength-1])
	if actual < 0 {
		return false
	}
	return expected == actual
}

// GSTINStateCode returns the state code prefix of a GSTIN, or "" when it is
// too short to carry one.
func GSTINStateCode(gstin string) string {
	gstin = NormalizeGSTIN(gstin)
	if len(gstin) < 2 {
		return ""
	}
	return gstin[:2]
}
