// Package risk implements the standalone health risk calculator: a weighted
// sum over age, lifestyle and history factors. It does not depend on the
// analysis engine and shares nothing with it beyond the domain.
package risk

import (
	"fmt"
	"math"
	"time"

	"github.com/araddon/dateparse"

	"github.com/RishiRohanKalapala/medica/internal/medica/logger"
)

// Risk levels, lowest to highest.
const (
	LevelLow      = "Low"
	LevelModerate = "Moderate"
	LevelHigh     = "High"
)

// Input is one risk questionnaire. Age may be given directly or derived from
// Birthdate (any common date format). Weight and height are optional; when
// both are present BMI contributes to the score.
type Input struct {
	Age       int    `json:"age"`
	Birthdate string `json:"birthdate,omitempty"`

	Smoker            bool `json:"smoker"`
	FamilyHistory     bool `json:"family_history"`
	Diabetes          bool `json:"diabetes"`
	HighBloodPressure bool `json:"high_blood_pressure"`
	HighCholesterol   bool `json:"high_cholesterol"`

	WeightKg float64 `json:"weight_kg,omitempty"`
	HeightCm float64 `json:"height_cm,omitempty"`
}

// Assessment is the scored questionnaire result.
type Assessment struct {
	OverallRisk        string   `json:"overall_risk"`
	RiskScore          int      `json:"risk_score"`
	RiskExplanation    string   `json:"risk_explanation"`
	RiskFactors        []string `json:"risk_factors"`
	PreventiveMeasures []string `json:"preventive_measures"`
	BMI                float64  `json:"bmi,omitempty"` // rounded to 1 decimal, 0 when not computed
}

// AgeFromBirthdate derives whole years between a birthdate string and now.
// Any format dateparse understands is accepted.
func AgeFromBirthdate(birthdate string, now time.Time) (int, error) {
	t, err := dateparse.ParseAny(birthdate)
	if err != nil {
		return 0, fmt.Errorf("parse birthdate %q: %w", birthdate, err)
	}
	if t.After(now) {
		return 0, fmt.Errorf("birthdate %q is in the future", birthdate)
	}

	age := now.Year() - t.Year()
	if now.YearDay() < t.YearDay() {
		age--
	}
	return age, nil
}

// Assess validates the input and computes the weighted risk score with its
// factor and preventive-measure lists.
//
// Weights: age>65 +30 (>50 +15), smoking +40, family history +25,
// diabetes +20, high blood pressure +15, high cholesterol +15,
// BMI>30 +10 (>25 +5). Overall risk is High above 60, Moderate above 30,
// otherwise Low.
func Assess(in Input) (Assessment, error) {
	age := in.Age
	if age == 0 && in.Birthdate != "" {
		derived, err := AgeFromBirthdate(in.Birthdate, time.Now())
		if err != nil {
			return Assessment{}, err
		}
		age = derived
	}
	if age < 0 || age > 120 {
		return Assessment{}, fmt.Errorf("age %d out of range 0..120", age)
	}
	if in.WeightKg < 0 || in.WeightKg > 500 {
		return Assessment{}, fmt.Errorf("weight %.1f out of range 0..500 kg", in.WeightKg)
	}
	if in.HeightCm < 0 || in.HeightCm > 300 {
		return Assessment{}, fmt.Errorf("height %.1f out of range 0..300 cm", in.HeightCm)
	}

	var bmi float64
	if in.WeightKg > 0 && in.HeightCm > 0 {
		meters := in.HeightCm / 100
		bmi = in.WeightKg / (meters * meters)
		if bmi > 100 {
			return Assessment{}, fmt.Errorf("implausible BMI %.1f from weight %.1f kg, height %.1f cm",
				bmi, in.WeightKg, in.HeightCm)
		}
	}

	score := 0
	var factors []string
	var measures []string

	if age > 65 {
		score += 30
		factors = append(factors, "Advanced age (>65 years)")
	} else if age > 50 {
		score += 15
		factors = append(factors, "Middle age (50-65 years)")
	}

	if in.Smoker {
		score += 40
		factors = append(factors, "Current smoker")
		measures = append(measures, "Smoking cessation program")
	}

	if in.FamilyHistory {
		score += 25
		factors = append(factors, "Family history of heart disease, cancer, or thyroid disorders")
		measures = append(measures, "Regular genetic counseling and screening")
	}

	if in.Diabetes {
		score += 20
		factors = append(factors, "Diabetes mellitus")
		measures = append(measures, "Optimal diabetes management and HbA1c monitoring")
	}

	if in.HighBloodPressure {
		score += 15
		factors = append(factors, "Hypertension")
		measures = append(measures, "Blood pressure control through medication and lifestyle")
	}

	if in.HighCholesterol {
		score += 15
		factors = append(factors, "High cholesterol levels")
		measures = append(measures, "Cholesterol management with statins and diet modification")
	}

	if bmi > 30 {
		score += 10
		factors = append(factors, "Obesity (BMI >30)")
		measures = append(measures, "Weight management through diet and exercise")
	} else if bmi > 25 {
		score += 5
		factors = append(factors, "Overweight (BMI 25-30)")
		measures = append(measures, "Lifestyle modifications for weight control")
	}

	measures = append(measures,
		"Regular exercise (150 minutes/week)",
		"Mediterranean diet",
		"Stress management",
		"Regular medical check-ups")

	overall := LevelLow
	explanation := "Your current risk profile suggests a low probability of developing serious conditions."
	if score > 60 {
		overall = LevelHigh
		explanation = "Your risk profile indicates elevated chances of developing cardiovascular, thyroid, or lung conditions. Immediate medical consultation recommended."
	} else if score > 30 {
		overall = LevelModerate
		explanation = "You have moderate risk factors that should be addressed through lifestyle changes and regular monitoring."
	}

	logger.L().Debugw("Risk assessment computed",
		"age", age,
		"score", score,
		"overall", overall,
		"factors", len(factors))

	return Assessment{
		OverallRisk:        overall,
		RiskScore:          score,
		RiskExplanation:    explanation,
		RiskFactors:        factors,
		PreventiveMeasures: dedupe(measures),
		BMI:                math.Round(bmi*10) / 10,
	}, nil
}

func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := items[:0]
	for _, item := range items {
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
