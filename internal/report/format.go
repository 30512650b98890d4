package report

import (
	"math/big"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// countPrinter groups digits with locale separators so that combination
// counts stay readable.
var countPrinter = message.NewPrinter(language.English)

// formatCount renders a combination count with digit grouping when it
// fits a machine word, and as plain digits otherwise. Counts beyond
// uint64 are already so large that grouping adds nothing but width.
func formatCount(n *big.Int) string {
	if n == nil {
		return ""
	}
	if n.IsUint64() {
		return countPrinter.Sprintf("%d", n.Uint64())
	}
	return n.String()
}
