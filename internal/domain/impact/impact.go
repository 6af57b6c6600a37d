// Package impact classifies emission estimates into qualitative severity
// bands using fixed per-category thresholds.
package impact

import "github.com/okian/footprint/internal/domain/model"

// Band is a qualitative severity label for an emission estimate.
type Band string

// bandCount is the number of bands per category (one more than breakpoints).
const bandCount = 4

// scale holds the ascending breakpoints and the band labels for a category.
type scale struct {
	breakpoints [bandCount - 1]float64
	bands       [bandCount]Band
}

// scales reproduces the per-category threshold tables. Values are in metric
// tons CO2e; breakpoints are ascending.
var scales = map[model.Category]scale{
	model.CategoryHousehold: {
		breakpoints: [3]float64{2, 5, 10},
		bands:       [4]Band{"Excellent", "Moderate", "High", "Very High"},
	},
	model.CategoryTransport: {
		breakpoints: [3]float64{1, 3, 5},
		bands:       [4]Band{"Great", "Average", "High", "Very High"},
	},
	model.CategoryCar: {
		breakpoints: [3]float64{2, 4, 6},
		bands:       [4]Band{"Efficient", "Average", "High", "Very High"},
	},
	model.CategoryFood: {
		breakpoints: [3]float64{1.5, 3, 4.5},
		bands:       [4]Band{"Sustainable", "Average", "High", "Very High"},
	},
}

// Classify maps a category and a computed value to exactly one band.
// Comparisons are strict less-than against ascending breakpoints, scanning
// low to high, so a value equal to a breakpoint lands in the worse band.
func Classify(c model.Category, value float64) Band {
	band, _ := Assess(c, value)
	return band
}

// Assess returns the band together with its severity level, 0 (best) to 3
// (worst). The level is what the presentation layer keys styling on.
func Assess(c model.Category, value float64) (Band, int) {
	s, ok := scales[c]
	if !ok {
		// Category is a closed enum validated upstream; this branch only
		// fires on programmer error.
		return "", 0
	}
	for i, b := range s.breakpoints {
		if value < b {
			return s.bands[i], i
		}
	}
	return s.bands[bandCount-1], bandCount - 1
}
