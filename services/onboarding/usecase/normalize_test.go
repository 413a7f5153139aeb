package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fitlink/fitlink/internal/pkg/config"
)

func TestMapOption(t *testing.T) {
	labels := config.DefaultLabelConfig()

	assert.Equal(t, "Strength Training", mapOption(labels.Specializations, "spec_strength"))
	assert.Equal(t, "Negotiable", mapOption(labels.PricingOptions, "price_negotiable"))
}

func TestMapOption_UnknownIDPassesThrough(t *testing.T) {
	labels := config.DefaultLabelConfig()

	// An option shipped on a flow screen ahead of the catalog must survive
	assert.Equal(t, "spec_crossfit", mapOption(labels.Specializations, "spec_crossfit"))
}

func TestMapOptions(t *testing.T) {
	labels := config.DefaultLabelConfig()

	testCases := []struct {
		name string
		ids  []string
		want string
	}{
		{
			name: "all known",
			ids:  []string{"spec_strength", "spec_yoga"},
			want: "Strength Training, Yoga & Mobility",
		},
		{
			name: "known and unknown mixed",
			ids:  []string{"spec_strength", "spec_crossfit"},
			want: "Strength Training, spec_crossfit",
		},
		{
			name: "single element",
			ids:  []string{"spec_rehab"},
			want: "Injury Rehabilitation",
		},
		{
			name: "blank elements dropped",
			ids:  []string{" ", "spec_strength", ""},
			want: "Strength Training",
		},
		{
			name: "empty list",
			ids:  nil,
			want: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, mapOptions(labels.Specializations, tc.ids))
		})
	}
}
