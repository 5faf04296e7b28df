package service

import (
	"fmt"
	"math"
)

type BMIResult struct {
	Age      int     `json:"age"`
	HeightM  float64 `json:"height_m"`
	WeightKg float64 `json:"weight_kg"`
	BMI      float64 `json:"bmi"`
	Category string  `json:"category"`
}

// CalculateBMI computes weight / height^2. Age is validated but does not
// affect the result.
func CalculateBMI(age int, heightM, weightKg float64) (BMIResult, error) {
	if age < 0 {
		return BMIResult{}, fmt.Errorf("age cannot be negative")
	}
	if !(heightM > 0) || !(weightKg > 0) || math.IsInf(heightM, 0) || math.IsInf(weightKg, 0) {
		return BMIResult{}, fmt.Errorf("height and weight must be positive values")
	}
	bmi := weightKg / (heightM * heightM)
	return BMIResult{Age: age, HeightM: heightM, WeightKg: weightKg, BMI: bmi, Category: BMICategory(bmi)}, nil
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}
