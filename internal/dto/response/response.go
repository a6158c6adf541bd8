package response

import "github.com/shopspring/decimal"

// Monetary fields go over the wire as plain JSON numbers with two
// decimal places, not quoted strings.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}
