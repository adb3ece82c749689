package risk

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssessScoring(t *testing.T) {
	tests := []struct {
		name          string
		input         Input
		expectedScore int
		expectedLevel string
	}{
		{
			name:          "no_factors",
			input:         Input{Age: 30},
			expectedScore: 0,
			expectedLevel: LevelLow,
		},
		{
			name:          "middle_age_only",
			input:         Input{Age: 55},
			expectedScore: 15,
			expectedLevel: LevelLow,
		},
		{
			name:          "advanced_age_only",
			input:         Input{Age: 70},
			expectedScore: 30,
			expectedLevel: LevelLow,
		},
		{
			name:          "smoker_only",
			input:         Input{Age: 30, Smoker: true},
			expectedScore: 40,
			expectedLevel: LevelModerate,
		},
		{
			name:          "boundary_30_is_low",
			input:         Input{Age: 70}, // 30 points exactly
			expectedScore: 30,
			expectedLevel: LevelLow,
		},
		{
			name: "boundary_60_is_moderate",
			// 40 + 20 = 60 points exactly
			input:         Input{Age: 30, Smoker: true, Diabetes: true},
			expectedScore: 60,
			expectedLevel: LevelModerate,
		},
		{
			name: "above_60_is_high",
			// 40 + 25 = 65
			input:         Input{Age: 30, Smoker: true, FamilyHistory: true},
			expectedScore: 65,
			expectedLevel: LevelHigh,
		},
		{
			name: "all_factors",
			// 30 + 40 + 25 + 20 + 15 + 15 + 10 (BMI 32.9)
			input: Input{
				Age:               70,
				Smoker:            true,
				FamilyHistory:     true,
				Diabetes:          true,
				HighBloodPressure: true,
				HighCholesterol:   true,
				WeightKg:          100,
				HeightCm:          174.3,
			},
			expectedScore: 155,
			expectedLevel: LevelHigh,
		},
		{
			name:          "overweight_bmi",
			input:         Input{Age: 30, WeightKg: 80, HeightCm: 175}, // BMI 26.1
			expectedScore: 5,
			expectedLevel: LevelLow,
		},
		{
			name:          "obese_bmi",
			input:         Input{Age: 30, WeightKg: 95, HeightCm: 175}, // BMI 31.0
			expectedScore: 10,
			expectedLevel: LevelLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Assess(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedScore, got.RiskScore)
			assert.Equal(t, tt.expectedLevel, got.OverallRisk)
			assert.NotEmpty(t, got.RiskExplanation)
		})
	}
}

func TestAssessValidation(t *testing.T) {
	tests := []struct {
		name  string
		input Input
	}{
		{name: "negative_age", input: Input{Age: -1}},
		{name: "age_too_high", input: Input{Age: 121}},
		{name: "weight_too_high", input: Input{Age: 30, WeightKg: 501}},
		{name: "height_too_high", input: Input{Age: 30, HeightCm: 301}},
		{name: "implausible_bmi", input: Input{Age: 30, WeightKg: 400, HeightCm: 100}},
		{name: "bad_birthdate", input: Input{Birthdate: "not a date"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Assess(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestAssessGeneralMeasuresAlwaysPresent(t *testing.T) {
	got, err := Assess(Input{Age: 25})
	require.NoError(t, err)

	assert.Contains(t, got.PreventiveMeasures, "Regular exercise (150 minutes/week)")
	assert.Contains(t, got.PreventiveMeasures, "Mediterranean diet")
	assert.Contains(t, got.PreventiveMeasures, "Stress management")
	assert.Contains(t, got.PreventiveMeasures, "Regular medical check-ups")
	assert.Empty(t, got.RiskFactors)
}

func TestAssessBMIRounding(t *testing.T) {
	// 70 kg at 1.75 m is BMI 22.857..., reported as 22.9
	got, err := Assess(Input{Age: 30, WeightKg: 70, HeightCm: 175})
	require.NoError(t, err)
	assert.Equal(t, 22.9, got.BMI)
}

func TestAgeFromBirthdate(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		birthdate string
		expected  int
		wantErr   bool
	}{
		{
			name:      "birthday_already_passed",
			birthdate: "1990-03-01",
			expected:  34,
		},
		{
			name:      "birthday_not_yet_reached",
			birthdate: "1990-12-25",
			expected:  33,
		},
		{
			name:      "us_format",
			birthdate: "03/01/1990",
			expected:  34,
		},
		{
			name:      "future_date",
			birthdate: "2030-01-01",
			wantErr:   true,
		},
		{
			name:      "unparseable",
			birthdate: "yesterday-ish",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AgeFromBirthdate(tt.birthdate, now)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
