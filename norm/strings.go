package norm

import "strings"

// Ready-made string uniformities. Each is idempotent on its own, and any
// composition of the three stays idempotent, so AndUniformity is safe here.
var (
	// Trimmed removes leading and trailing whitespace.
	Trimmed Uniformity[string] = strings.TrimSpace

	// Lowercased maps the string to lower case.
	Lowercased Uniformity[string] = strings.ToLower

	// Uppercased maps the string to upper case.
	Uppercased Uniformity[string] = strings.ToUpper
)
