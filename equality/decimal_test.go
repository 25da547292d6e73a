package equality_test

import (
	"testing"
	"time"

	"github.com/govalues/decimal"
	"github.com/rickb777/date/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/on-the-ground/collect_ive_go/equality"
)

func TestDecimal_ScaleInsensitive(t *testing.T) {
	eq := equality.Decimal()

	oneTwo := decimal.MustParse("1.2")
	oneTwoHundred := decimal.MustParse("1.200")
	require.NotEqual(t, oneTwo.String(), oneTwoHundred.String())

	assert.True(t, eq.AreEqual(oneTwo, oneTwoHundred))
	assert.Equal(t, eq.HashOf(oneTwo), eq.HashOf(oneTwoHundred))
	assert.Zero(t, eq.Compare(oneTwo, oneTwoHundred))
	assert.False(t, eq.AreEqual(oneTwo, decimal.MustParse("1.21")))
	assert.Negative(t, eq.Compare(oneTwo, decimal.MustParse("1.21")))
}

func TestDate_ChronologicalOrder(t *testing.T) {
	eq := equality.Date()

	jan5 := date.New(2024, time.January, 5)
	jan6 := date.New(2024, time.January, 6)

	assert.True(t, eq.AreEqual(jan5, date.New(2024, time.January, 5)))
	assert.Equal(t, eq.HashOf(jan5), eq.HashOf(date.New(2024, time.January, 5)))
	assert.Negative(t, eq.Compare(jan5, jan6))
	assert.Positive(t, eq.Compare(jan6, jan5))
	assert.Zero(t, eq.Compare(jan5, jan5))
}
