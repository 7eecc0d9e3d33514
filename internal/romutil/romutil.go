// Package romutil holds small arithmetic helpers shared by the loader and
// the report writer.
package romutil

// RoundUpMultiple rounds val up to the nearest multiple of divisor.
func RoundUpMultiple(val, divisor int) int {
	return (val + divisor - 1) / divisor * divisor
}

// RoundDownMultiple rounds val down to the nearest multiple of divisor.
func RoundDownMultiple(val, divisor int) int {
	return val / divisor * divisor
}
