package models

// missingMarkers are the field values spreadsheet and dataframe exports use
// for an absent cell.
var missingMarkers = map[string]struct{}{
	"":         {},
	"#N/A":     {},
	"#N/A N/A": {},
	"#NA":      {},
	"-1.#IND":  {},
	"-1.#QNAN": {},
	"-NaN":     {},
	"-nan":     {},
	"1.#IND":   {},
	"1.#QNAN":  {},
	"<NA>":     {},
	"N/A":      {},
	"NA":       {},
	"NULL":     {},
	"NaN":      {},
	"None":     {},
	"n/a":      {},
	"nan":      {},
	"null":     {},
}

// IsMissing reports whether a raw field denotes an absent value. The match
// is exact; surrounding whitespace makes a value present.
func IsMissing(s string) bool {
	_, ok := missingMarkers[s]
	return ok
}
