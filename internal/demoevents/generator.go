package demoevents

import (
	"math/rand"
)

// submission is one generated calculator request.
type submission struct {
	Category string
	Body     map[string]any
}

// Plausible input ranges for generated submissions. These mirror the form
// bounds enforced by the API, trimmed to values a real household would enter.
const (
	maxMembers        = 6
	maxElectricityKWh = 6000
	maxGasKWh         = 9000
	maxOilLitres      = 1200
	maxCoalKg         = 400
	maxBusKm          = 4000
	maxTrainKm        = 6000
	maxTaxiKm         = 800
	maxFlightKm       = 20000
	maxDistanceKm     = 25000
	maxEfficiency     = 12.0
	minEfficiency     = 4.0
	maxMeals          = 21
)

var fuelTypes = []string{"Petrol", "Diesel", "Hybrid", "Electric"}
var dietTypes = []string{"Meat lover", "Average", "Vegetarian", "Vegan"}

// generate produces n submissions cycling through categories so every chart
// series gets data.
func generate(rng *rand.Rand, n int) []submission {
	out := make([]submission, 0, n)
	for i := 0; i < n; i++ {
		switch i % 4 {
		case 0:
			out = append(out, submission{Category: "household", Body: map[string]any{
				"members":         1 + rng.Intn(maxMembers),
				"electricity_kwh": round1(rng.Float64() * maxElectricityKWh),
				"gas_kwh":         round1(rng.Float64() * maxGasKWh),
				"oil_litres":      round1(rng.Float64() * maxOilLitres),
				"coal_kg":         round1(rng.Float64() * maxCoalKg),
			}})
		case 1:
			out = append(out, submission{Category: "transport", Body: map[string]any{
				"bus_km":    round1(rng.Float64() * maxBusKm),
				"train_km":  round1(rng.Float64() * maxTrainKm),
				"taxi_km":   round1(rng.Float64() * maxTaxiKm),
				"flight_km": round1(rng.Float64() * maxFlightKm),
			}})
		case 2:
			fuel := fuelTypes[rng.Intn(len(fuelTypes))]
			out = append(out, submission{Category: "car", Body: map[string]any{
				"distance_km":                 round1(rng.Float64() * maxDistanceKm),
				"fuel_type":                   fuel,
				"fuel_efficiency_l_per_100km": round1(minEfficiency + rng.Float64()*(maxEfficiency-minEfficiency)),
			}})
		case 3:
			out = append(out, submission{Category: "food", Body: map[string]any{
				"diet_type":      dietTypes[rng.Intn(len(dietTypes))],
				"meals_per_week": 1 + rng.Intn(maxMeals),
			}})
		}
	}
	return out
}

// round1 keeps generated quantities readable in the UI.
func round1(v float64) float64 {
	return float64(int(v*10)) / 10
}
