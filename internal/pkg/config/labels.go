package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fitlink/fitlink/internal/pkg/models"
)

// DefaultLabelConfig returns the built-in option-ID-to-label dictionaries for
// the flow screens. The dictionaries are closed sets for cataloged options;
// the normalizer passes unknown IDs through unchanged, so shipping a new flow
// screen option does not require a deploy here.
func DefaultLabelConfig() *models.FlowLabelConfig {
	return &models.FlowLabelConfig{
		Specializations: map[string]string{
			"spec_weight_loss":      "Weight Loss",
			"spec_strength":         "Strength Training",
			"spec_endurance":        "Endurance",
			"spec_yoga":             "Yoga & Mobility",
			"spec_rehab":            "Injury Rehabilitation",
			"spec_nutrition":        "Nutrition Coaching",
			"spec_pre_post_natal":   "Pre/Post-natal Fitness",
			"spec_senior_fitness":   "Senior Fitness",
			"spec_sport_specific":   "Sport-specific Conditioning",
		},
		ServicesOffered: map[string]string{
			"svc_one_on_one":    "One-on-one Sessions",
			"svc_group":         "Group Classes",
			"svc_online":        "Online Coaching",
			"svc_home_visits":   "Home Visits",
			"svc_meal_planning": "Meal Planning",
			"svc_assessments":   "Fitness Assessments",
		},
		PricingOptions: map[string]string{
			"price_fixed":      "Fixed Rate",
			"price_sliding":    "Sliding Scale",
			"price_packages":   "Package Deals",
			"price_negotiable": "Negotiable",
		},
		FitnessGoals: map[string]string{
			"goal_lose_weight":  "Lose Weight",
			"goal_build_muscle": "Build Muscle",
			"goal_get_fit":      "General Fitness",
			"goal_train_event":  "Train for an Event",
			"goal_recover":      "Recover from Injury",
		},
		ActivityLevels: map[string]string{
			"activity_sedentary": "Sedentary",
			"activity_light":     "Lightly Active",
			"activity_moderate":  "Moderately Active",
			"activity_high":      "Very Active",
		},
	}
}

// LoadLabelConfig loads the label dictionaries, applying a JSON override file
// when one is configured. Missing sections in the override keep the defaults.
func LoadLabelConfig(path string) (*models.FlowLabelConfig, error) {
	labels := DefaultLabelConfig()
	if path == "" {
		return labels, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read label config: %w", err)
	}

	var override models.FlowLabelConfig
	if err := json.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("failed to parse label config: %w", err)
	}

	if len(override.Specializations) > 0 {
		labels.Specializations = override.Specializations
	}
	if len(override.ServicesOffered) > 0 {
		labels.ServicesOffered = override.ServicesOffered
	}
	if len(override.PricingOptions) > 0 {
		labels.PricingOptions = override.PricingOptions
	}
	if len(override.FitnessGoals) > 0 {
		labels.FitnessGoals = override.FitnessGoals
	}
	if len(override.ActivityLevels) > 0 {
		labels.ActivityLevels = override.ActivityLevels
	}

	return labels, nil
}
