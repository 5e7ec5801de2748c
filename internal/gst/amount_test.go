package gst_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"payvlo/internal/gst"
)

func TestFormatIndianCurrency(t *testing.T) {
	tests := []struct {
		amount   float64
		currency bool
		want     string
	}{
		{0, true, "₹0.00"},
		{5, true, "₹5.00"},
		{100, true, "₹100.00"},
		{1000, true, "₹1,000.00"},
		{100000, true, "₹1,00,000.00"},
		{1234567.891, true, "₹12,34,567.89"},
		{10000000, true, "₹1,00,00,000.00"},
		{987654321012.5, true, "₹9,87,65,43,21,012.50"},
		{-1234.5, true, "-₹1,234.50"},
		{123456.789, false, "1,23,456.79"},
		{-0.001, true, "₹0.00"},
		{0.005, false, "0.01"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, gst.FormatIndianCurrency(tt.amount, tt.currency))
		})
	}
}

func TestFormatIndianCurrency_NonFinite(t *testing.T) {
	assert.Equal(t, "₹0.00", gst.FormatIndianCurrency(math.NaN(), true))
	assert.Equal(t, "0.00", gst.FormatIndianCurrency(math.Inf(1), false))
}

func TestAmountToWords(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "zero rupees only"},
		{0.001, "zero rupees only"},
		{1, "one rupee only"},
		{0.01, "one paisa only"},
		{0.5, "fifty paise only"},
		{15, "fifteen rupees only"},
		{40, "forty rupees only"},
		{1234.5, "one thousand two hundred thirty four rupees and fifty paise only"},
		{100000, "one lakh rupees only"},
		{1180, "one thousand one hundred eighty rupees only"},
		{12345678.9, "one crore twenty three lakh forty five thousand six hundred seventy eight rupees and ninety paise only"},
		{1000000000, "one hundred crore rupees only"},
		{21.999, "twenty two rupees only"},
		{1.01, "one rupee and one paisa only"},
		{-5, "minus five rupees only"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, gst.AmountToWords(tt.amount))
		})
	}
}

func TestAmountToWords_NonFinite(t *testing.T) {
	assert.Equal(t, "zero rupees only", gst.AmountToWords(math.Inf(-1)))
}
