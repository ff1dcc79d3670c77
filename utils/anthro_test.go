package utils

import (
	"math"
	"testing"
)

func TestMifflinStJeorBMR(t *testing.T) {
	kg := 150 * LbToKg
	cm := 65 * InToCm
	got := MifflinStJeorBMR(kg, cm, 30, "F")
	if math.Abs(got-1401.26) > 0.01 {
		t.Errorf("female BMR = %.2f, want 1401.26", got)
	}

	male := MifflinStJeorBMR(kg, cm, 30, "M")
	if math.Abs(male-got-166) > 0.001 {
		t.Errorf("male/female sex constants should differ by 166, got %.3f", male-got)
	}

	other := MifflinStJeorBMR(kg, cm, 30, "X")
	if other <= got || other >= male {
		t.Errorf("unspecified sex constant should sit between: %v < %v < %v", got, other, male)
	}
}

func TestBMICategory(t *testing.T) {
	cases := map[float64]string{
		17.0: "Underweight",
		22.0: "Normal weight",
		27.0: "Overweight",
		33.0: "Obesity class I",
		42.0: "Obesity class III",
	}
	for bmi, want := range cases {
		if got := BMICategory(bmi); got != want {
			t.Errorf("BMICategory(%v) = %q, want %q", bmi, got, want)
		}
	}
}
