package hsn_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"payvlo/internal/hsn"
	"payvlo/internal/port"
	"payvlo/mocks"
)

func sampleEntries() []port.HSNEntry {
	return []port.HSNEntry{
		{Code: "8471", Description: "Automatic data processing machines", GSTRate: 18},
		{Code: "1006", Description: "Rice", GSTRate: 5, ConditionDesc: "pre-packaged and labelled"},
		{Code: "1006", GSTRate: 0},
		{Code: "998314", Description: "IT design and development services", GSTRate: 18},
	}
}

func TestLookup_ExistsWithPrefixFallback(t *testing.T) {
	l := hsn.NewLookup(sampleEntries())

	assert.True(t, l.Exists("8471"))
	assert.True(t, l.Exists("84713010"))
	assert.True(t, l.Exists("99831410"))
	assert.False(t, l.Exists("8472"))
	assert.False(t, l.Exists("847"))
	assert.False(t, l.Exists(""))
	assert.Equal(t, 3, l.Len())
}

func TestLookup_Description(t *testing.T) {
	l := hsn.NewLookup(sampleEntries())

	desc, ok := l.Description("10061010")
	require.True(t, ok)
	assert.Equal(t, "Rice", desc)

	_, ok = l.Description("0101")
	assert.False(t, ok)
}

func TestLookup_SuggestedRatePrefersUnconditional(t *testing.T) {
	l := hsn.NewLookup(sampleEntries())

	rate, ok := l.SuggestedRate("1006")
	require.True(t, ok)
	assert.Equal(t, 0.0, rate)

	rate, ok = l.SuggestedRate("998314")
	require.True(t, ok)
	assert.Equal(t, 18.0, rate)

	_, ok = l.SuggestedRate("5208")
	assert.False(t, ok)
}

func TestLookup_RateMatches(t *testing.T) {
	l := hsn.NewLookup(sampleEntries())

	ok, rates := l.RateMatches("1006", 5)
	assert.True(t, ok)
	assert.Len(t, rates, 2)

	ok, rates = l.RateMatches("847130", 12)
	assert.False(t, ok)
	require.Len(t, rates, 1)
	assert.Equal(t, 18.0, rates[0].Rate)

	ok, rates = l.RateMatches("0000", 18)
	assert.False(t, ok)
	assert.Empty(t, rates)
}

func TestLookup_NilIsEmpty(t *testing.T) {
	var l *hsn.Lookup
	assert.False(t, l.Exists("8471"))
	assert.Equal(t, 0, l.Len())
}

func TestLoad(t *testing.T) {
	on := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	repo := new(mocks.MockHSNRepository)
	repo.On("LoadEffective", context.Background(), on).Return(sampleEntries(), nil).Once()

	l, err := hsn.Load(context.Background(), repo, on)
	require.NoError(t, err)
	assert.True(t, l.Exists("8471"))
	repo.AssertExpectations(t)
}

func TestLoad_RepoError(t *testing.T) {
	repo := new(mocks.MockHSNRepository)
	repo.On("LoadEffective", context.Background(), mock.Anything).Return(nil, errors.New("boom")).Once()

	_, err := hsn.Load(context.Background(), repo, time.Now())
	assert.Error(t, err)
}
