package footprint

import (
	"fmt"
	"math"
	"time"

	"github.com/arloliu/carbonviz/errs"
)

// Reference factor names used by ComputeEquivalents.
const (
	FactorDriving  = "driving"             // grams per mile in a gas-powered car
	FactorBeef     = "beef_serving"        // grams per serving (25g of protein)
	FactorCharging = "charging_smartphone" // grams per full smartphone charge
)

// Factor is a non-digital activity used as a yardstick.
type Factor struct {
	Name             string  `json:"name" yaml:"name"`
	Unit             string  `json:"unit,omitempty" yaml:"unit,omitempty"`
	EmissionsPerUnit float64 `json:"emissionsPerUnit" yaml:"emissionsPerUnit"`
}

// Trip is a one-way drive between two places, in miles.
type Trip struct {
	Departure   string  `json:"departure" yaml:"departure"`
	Destination string  `json:"destination" yaml:"destination"`
	Distance    float64 `json:"distance" yaml:"distance"`
}

// RoundTrip returns the there-and-back distance.
func (t Trip) RoundTrip() float64 {
	return t.Distance * 2
}

// Equivalents expresses a yearly total in everyday terms.
type Equivalents struct {
	MilesDriven       float64 `json:"milesDriven"`
	BeefServings      float64 `json:"beefServings"`
	ChargingYears     float64 `json:"chargingYears"`
	ChargingUntilYear int     `json:"chargingUntilYear"`
	// ClosestTrip is the trip whose round trip is nearest to MilesDriven.
	ClosestTrip Trip `json:"closestTrip"`
}

// ComputeEquivalents converts yearlyGrams into miles driven, beef servings
// and years of daily smartphone charging (ending in ChargingUntilYear,
// counted from now), and picks the trip whose round trip best matches the
// miles driven. The first trip wins ties.
//
// A missing or non-positive reference factor fails with errs.ErrUnknownTask;
// an empty trip list with errs.ErrNoTrips.
func ComputeEquivalents(yearlyGrams float64, factors []Factor, trips []Trip, now time.Time) (Equivalents, error) {
	perMile, err := lookupFactor(factors, FactorDriving)
	if err != nil {
		return Equivalents{}, err
	}
	perServing, err := lookupFactor(factors, FactorBeef)
	if err != nil {
		return Equivalents{}, err
	}
	perCharge, err := lookupFactor(factors, FactorCharging)
	if err != nil {
		return Equivalents{}, err
	}

	eq := Equivalents{
		MilesDriven:  yearlyGrams / perMile,
		BeefServings: yearlyGrams / perServing,
	}
	eq.ChargingYears = yearlyGrams / perCharge / 365
	eq.ChargingUntilYear = now.Year() + int(math.Round(eq.ChargingYears))

	trip, err := ClosestTrip(eq.MilesDriven, trips)
	if err != nil {
		return Equivalents{}, err
	}
	eq.ClosestTrip = trip

	return eq, nil
}

// ClosestTrip returns the trip whose round-trip distance is nearest to miles.
func ClosestTrip(miles float64, trips []Trip) (Trip, error) {
	if len(trips) == 0 {
		return Trip{}, errs.ErrNoTrips
	}

	best := trips[0]
	bestDiff := math.Abs(miles - best.RoundTrip())
	for _, t := range trips[1:] {
		if d := math.Abs(miles - t.RoundTrip()); d < bestDiff {
			best, bestDiff = t, d
		}
	}

	return best, nil
}

func lookupFactor(factors []Factor, name string) (float64, error) {
	for _, f := range factors {
		if f.Name != name {
			continue
		}
		if f.EmissionsPerUnit <= 0 {
			return 0, fmt.Errorf("%w: %s has non-positive emissions per unit", errs.ErrUnknownTask, name)
		}

		return f.EmissionsPerUnit, nil
	}

	return 0, fmt.Errorf("%w: %s", errs.ErrUnknownTask, name)
}
