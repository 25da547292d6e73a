package equality

import (
	"github.com/cespare/xxhash/v2"
	"github.com/govalues/decimal"
)

// Decimal returns a policy under which decimals of equal numeric value are
// equal regardless of scale: 1.2 and 1.200 are one equivalence class. The
// hash observes the trailing-zero-trimmed rendering so it stays consistent
// with Cmp.
func Decimal() HashingOrderingEquality[decimal.Decimal] {
	return &decimalByValue{}
}

type decimalByValue struct {
	_ instanceToken
}

func (dv *decimalByValue) AreEqual(a decimal.Decimal, b any) bool {
	bd, ok := b.(decimal.Decimal)
	return ok && a.Cmp(bd) == 0
}

func (dv *decimalByValue) HashOf(a decimal.Decimal) uint64 {
	return xxhash.Sum64String(a.Trim(0).String())
}

func (dv *decimalByValue) Compare(a, b decimal.Decimal) int {
	return a.Cmp(b)
}
