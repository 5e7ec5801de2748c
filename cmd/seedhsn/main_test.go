package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSACRate(t *testing.T) {
	tests := []struct {
		in   string
		want []sacRate
	}{
		{"18%", []sacRate{{rate: 18}}},
		{"Exempt", []sacRate{{rate: 0, condition: "exempt"}}},
		{"12%-18%", []sacRate{{rate: 12}, {rate: 18}}},
		{"1% (without ITC) or 5% (without ITC)", []sacRate{{1, "without ITC"}, {5, "without ITC"}}},
		{"", nil},
		{"see notification", nil},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSACRate(tt.in))
		})
	}
}

func TestParsePercent(t *testing.T) {
	v, ok := parsePercent("18%")
	assert.True(t, ok)
	assert.Equal(t, 18.0, v)

	v, ok = parsePercent("0.28")
	assert.True(t, ok)
	assert.InDelta(t, 28.0, v, 1e-9)

	_, ok = parsePercent("n/a")
	assert.False(t, ok)
}

func TestSeedSet_Add(t *testing.T) {
	set := newSeedSet()
	set.add("8471", "Computers", 18, "")
	set.add("8471", "Computers", 18, "")
	set.add("84713010", "Laptops", 18, "")
	set.add("12AB", "bad code", 18, "")

	require.Len(t, set.entries, 2)
	assert.Equal(t, 1, set.skipped)
	assert.Equal(t, "", set.entries[0].parentCode)
	assert.Equal(t, "8471", set.entries[1].parentCode)
}

func TestWriteSQL(t *testing.T) {
	var buf bytes.Buffer
	err := writeSQL(&buf, []seedEntry{
		{code: "998314", description: "IT design's services", gstRate: 18, parentCode: "9983"},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "BEGIN;")
	assert.Contains(t, out, "('998314', 'IT design''s services', 18.00, '', '9983')")
	assert.Contains(t, out, "ON CONFLICT (code, gst_rate, condition_desc, effective_from) DO NOTHING;")
	assert.Contains(t, out, "COMMIT;")
}
