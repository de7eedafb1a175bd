package match

import (
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// levenshtein is shared; the metric carries no per-call state
var levenshtein = metrics.NewLevenshtein()

// Ratio returns a normalized edit-distance similarity between two
// strings on a 0-100 scale, 100 meaning identical.
func Ratio(a, b string) float64 {
	return strutil.Similarity(a, b, levenshtein) * 100
}
