package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StefanoAus/icoffee-backend/internal/models"
)

// TestOrderPayload_UnmarshalShapes verifies that all three historical order
// shapes decode: structured objects, plain legacy strings, and null/other
// values collapsing to the empty variant.
func TestOrderPayload_UnmarshalShapes(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected models.OrderPayload
	}{
		{
			name: "structured with both selections",
			raw:  `{"drink":{"item":"Coffee","variant":"Large"},"food":{"item":"Bagel","variant":"Plain"}}`,
			expected: models.OrderPayload{
				Drink: &models.OrderSelection{Item: "Coffee", Variant: "Large"},
				Food:  &models.OrderSelection{Item: "Bagel", Variant: "Plain"},
			},
		},
		{
			name:     "legacy free text string",
			raw:      `"one espresso, no sugar"`,
			expected: models.OrderPayload{LegacyText: "one espresso, no sugar"},
		},
		{
			name:     "null is empty",
			raw:      `null`,
			expected: models.OrderPayload{},
		},
		{
			name:     "number is empty",
			raw:      `42`,
			expected: models.OrderPayload{},
		},
		{
			name:     "array is empty",
			raw:      `["espresso"]`,
			expected: models.OrderPayload{},
		},
		{
			name:     "malformed drink field is dropped",
			raw:      `{"drink":"espresso","legacyText":"fallback"}`,
			expected: models.OrderPayload{LegacyText: "fallback"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload models.OrderPayload
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &payload))
			assert.Equal(t, tt.expected, payload)
		})
	}
}

// TestOrderPayload_Normalize verifies trimming, dropping of incomplete
// selections, and legacy text handling.
func TestOrderPayload_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		payload  models.OrderPayload
		expected models.OrderPayload
	}{
		{
			name: "selections are trimmed",
			payload: models.OrderPayload{
				Drink: &models.OrderSelection{Item: " Coffee ", Variant: " Large "},
			},
			expected: models.OrderPayload{
				Drink: &models.OrderSelection{Item: "Coffee", Variant: "Large"},
			},
		},
		{
			name: "selection missing variant is dropped",
			payload: models.OrderPayload{
				Drink: &models.OrderSelection{Item: "Coffee"},
				Food:  &models.OrderSelection{Item: "Bagel", Variant: "Plain"},
			},
			expected: models.OrderPayload{
				Food: &models.OrderSelection{Item: "Bagel", Variant: "Plain"},
			},
		},
		{
			name:     "whitespace legacy text becomes empty",
			payload:  models.OrderPayload{LegacyText: "   "},
			expected: models.OrderPayload{},
		},
		{
			name:     "legacy text is trimmed",
			payload:  models.OrderPayload{LegacyText: "  two croissants "},
			expected: models.OrderPayload{LegacyText: "two croissants"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.payload.Normalize())
		})
	}
}

// TestOrderPayload_NormalizeIdempotent verifies that normalizing an
// already-normalized payload returns an identical value.
func TestOrderPayload_NormalizeIdempotent(t *testing.T) {
	payloads := []models.OrderPayload{
		{},
		{LegacyText: "  cappuccino "},
		{
			Drink: &models.OrderSelection{Item: " Coffee", Variant: "Small "},
			Food:  &models.OrderSelection{Item: "Toast", Variant: ""},
		},
	}

	for _, payload := range payloads {
		once := payload.Normalize()
		twice := once.Normalize()
		assert.Equal(t, once, twice)
	}
}

// TestOrderPayload_MarshalEmpty verifies the empty variant marshals to {}.
func TestOrderPayload_MarshalEmpty(t *testing.T) {
	data, err := json.Marshal(models.OrderPayload{})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(data))
}
