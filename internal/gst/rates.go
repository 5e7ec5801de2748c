package gst

import (
	"math"
	"sort"
)

// validRates is the closed set of GST slabs.
var validRates = [...]float64{0, 5, 12, 18, 28}

// Rates returns the accepted GST slabs in ascending order.
func Rates() []float64 {
	out := make([]float64, len(validRates))
	copy(out, validRates[:])
	return out
}

// IsValidRate reports whether rate is exactly one of the GST slabs.
func IsValidRate(rate float64) bool {
	for _, r := range validRates {
		if r == rate {
			return true
		}
	}
	return false
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// CustomerType decides how the place of supply is inferred.
type CustomerType string

const (
	CustomerB2B    CustomerType = "B2B"
	CustomerB2C    CustomerType = "B2C"
	CustomerExport CustomerType = "EXPORT"
)

// Valid reports whether t is a known customer type.
func (t CustomerType) Valid() bool {
	switch t {
	case CustomerB2B, CustomerB2C, CustomerExport:
		return true
	}
	return false
}

// SupplyType is the nature of a supply; it disambiguates HSN and SAC codes.
type SupplyType string

const (
	SupplyGoods    SupplyType = "GOODS"
	SupplyServices SupplyType = "SERVICES"
)

// State is one entry of the GST state code table.
type State struct {
	Code             string `json:"state_code"`
	Name             string `json:"state_name"`
	IsUnionTerritory bool   `json:"is_union_territory"`
}

// stateTable is keyed by the two-digit code that prefixes every GSTIN.
// 28 and 37 both belong to Andhra Pradesh (pre- and post-bifurcation).
var stateTable = map[string]State{
	"01": {"01", "Jammu and Kashmir", true},
	"02": {"02", "Himachal Pradesh", false},
	"03": {"03", "Punjab", false},
	"04": {"04", "Chandigarh", true},
	"05": {"05", "Uttarakhand", false},
	"06": {"06", "Haryana", false},
	"07": {"07", "Delhi", true},
	"08": {"08", "Rajasthan", false},
	"09": {"09", "Uttar Pradesh", false},
	"10": {"10", "Bihar", false},
	"11": {"11", "Sikkim", false},
	"12": {"12", "Arunachal Pradesh", false},
	"13": {"13", "Nagaland", false},
	"14": {"14", "Manipur", false},
	"15": {"15", "Mizoram", false},
	"16": {"16", "Tripura", false},
	"17": {"17", "Meghalaya", false},
	"18": {"18", "Assam", false},
	"19": {"19", "West Bengal", false},
	"20": {"20", "Jharkhand", false},
	"21": {"21", "Odisha", false},
	"22": {"22", "Chhattisgarh", false},
	"23": {"23", "Madhya Pradesh", false},
	"24": {"24", "Gujarat", false},
	"25": {"25", "Daman and Diu", true},
	"26": {"26", "Dadra and Nagar Haveli", true},
	"27": {"27", "Maharashtra", false},
	"28": {"28", "Andhra Pradesh (Old)", false},
	"29": {"29", "Karnataka", false},
	"30": {"30", "Goa", false},
	"31": {"31", "Lakshadweep", true},
	"32": {"32", "Kerala", false},
	"33": {"33", "Tamil Nadu", false},
	"34": {"34", "Puducherry", true},
	"35": {"35", "Andaman and Nicobar Islands", true},
	"36": {"36", "Telangana", false},
	"37": {"37", "Andhra Pradesh", false},
	"38": {"38", "Ladakh", true},
}

// LookupState returns the state registered under code.
func LookupState(code string) (State, bool) {
	s, ok := stateTable[code]
	return s, ok
}

// StateName returns the state name for code, or "" when unknown.
func StateName(code string) string {
	return stateTable[code].Name
}

// States returns the whole table ordered by code.
func States() []State {
	out := make([]State, 0, len(stateTable))
	for _, s := range stateTable {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
