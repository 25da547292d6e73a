package equality

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// StringIgnoringCase returns a policy under which strings differing only in
// case are one equivalence class. It hashes and orders the lowercased form.
func StringIgnoringCase() HashingOrderingEquality[string] {
	return &ignoringCase{}
}

type ignoringCase struct {
	_ instanceToken
}

func (ic *ignoringCase) AreEqual(a string, b any) bool {
	bs, ok := b.(string)
	return ok && strings.ToLower(a) == strings.ToLower(bs)
}

func (ic *ignoringCase) HashOf(a string) uint64 {
	return xxhash.Sum64String(strings.ToLower(a))
}

func (ic *ignoringCase) Compare(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
