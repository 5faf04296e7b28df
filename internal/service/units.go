package service

import (
	"fmt"
	"math"
	"strings"
)

type unitKind string

const (
	unitKindMass   unitKind = "mass"
	unitKindVolume unitKind = "volume"
)

type unitDef struct {
	kind       unitKind
	toBaseUnit float64
}

var unitTable = map[string]unitDef{
	// mass (base = g)
	"mg":  {kind: unitKindMass, toBaseUnit: 0.001},
	"g":   {kind: unitKindMass, toBaseUnit: 1},
	"kg":  {kind: unitKindMass, toBaseUnit: 1000},
	"oz":  {kind: unitKindMass, toBaseUnit: 28.349523125},
	"lb":  {kind: unitKindMass, toBaseUnit: 453.59237},
	"lbs": {kind: unitKindMass, toBaseUnit: 453.59237},

	// volume (base = ml)
	"ml":    {kind: unitKindVolume, toBaseUnit: 1},
	"l":     {kind: unitKindVolume, toBaseUnit: 1000},
	"tsp":   {kind: unitKindVolume, toBaseUnit: 4.92892159375},
	"tbsp":  {kind: unitKindVolume, toBaseUnit: 14.78676478125},
	"cup":   {kind: unitKindVolume, toBaseUnit: 236.5882365},
	"fl-oz": {kind: unitKindVolume, toBaseUnit: 29.5735295625},
}

// ToGrams converts a meal quantity in any mass unit to grams.
func ToGrams(amount float64, unit string) (float64, error) {
	return convertUnit(amount, unit, "g")
}

// ToLiters converts a drink quantity in any volume unit to liters.
func ToLiters(amount float64, unit string) (float64, error) {
	return convertUnit(amount, unit, "l")
}

func convertUnit(value float64, fromUnit, toUnit string) (float64, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		return 0, fmt.Errorf("amount must be > 0")
	}
	from, ok := resolveUnit(fromUnit)
	if !ok {
		return 0, fmt.Errorf("unsupported unit %q", fromUnit)
	}
	to, ok := resolveUnit(toUnit)
	if !ok {
		return 0, fmt.Errorf("unsupported unit %q", toUnit)
	}
	if from.kind != to.kind {
		return 0, fmt.Errorf("unit %q is %s, expected a %s unit", fromUnit, from.kind, to.kind)
	}
	return value * from.toBaseUnit / to.toBaseUnit, nil
}

func resolveUnit(unit string) (unitDef, bool) {
	u := strings.ToLower(strings.TrimSpace(unit))
	def, ok := unitTable[u]
	return def, ok
}
