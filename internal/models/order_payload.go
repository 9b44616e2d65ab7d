package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

// OrderSelection is one chosen (item, variant) pair from the menu catalog.
type OrderSelection struct {
	Item    string `json:"item"`
	Variant string `json:"variant"`
}

// IsComplete reports whether both item and variant are non-empty after
// trimming. Incomplete selections are dropped by normalization and never
// count toward the at-least-one-selection rule.
func (s OrderSelection) IsComplete() bool {
	return strings.TrimSpace(s.Item) != "" && strings.TrimSpace(s.Variant) != ""
}

// trimmed returns a copy with item and variant trimmed.
func (s OrderSelection) trimmed() OrderSelection {
	return OrderSelection{
		Item:    strings.TrimSpace(s.Item),
		Variant: strings.TrimSpace(s.Variant),
	}
}

// OrderPayload is the tagged variant behind an order's content. Three
// historical shapes exist in stored documents and are all accepted on
// decode:
//
//   - structured: an object with optional "drink"/"food" selections and an
//     optional "legacyText" string
//   - legacy: a plain JSON string (free-text order from the old client)
//   - empty: null or anything else
//
// A zero OrderPayload is the empty variant and marshals to {}.
type OrderPayload struct {
	Drink      *OrderSelection `json:"drink,omitempty"`
	Food       *OrderSelection `json:"food,omitempty"`
	LegacyText string          `json:"legacyText,omitempty"`
}

// rawOrderPayload mirrors OrderPayload with deferred field decoding so that
// malformed sub-values (a string where an object is expected, and so on)
// degrade to absent fields instead of failing the whole document.
type rawOrderPayload struct {
	Drink      json.RawMessage `json:"drink"`
	Food       json.RawMessage `json:"food"`
	LegacyText json.RawMessage `json:"legacyText"`
}

// UnmarshalJSON accepts the three historical payload shapes.
func (p *OrderPayload) UnmarshalJSON(data []byte) error {
	*p = OrderPayload{}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	switch data[0] {
	case '"':
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return nil
		}
		p.LegacyText = text
	case '{':
		var raw rawOrderPayload
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil
		}
		p.Drink = decodeSelection(raw.Drink)
		p.Food = decodeSelection(raw.Food)
		if len(raw.LegacyText) > 0 {
			var text string
			if err := json.Unmarshal(raw.LegacyText, &text); err == nil {
				p.LegacyText = text
			}
		}
	}
	// Any other shape (number, bool, array) is the empty variant.
	return nil
}

func decodeSelection(data json.RawMessage) *OrderSelection {
	if len(data) == 0 {
		return nil
	}
	var sel OrderSelection
	if err := json.Unmarshal(data, &sel); err != nil {
		return nil
	}
	return &sel
}

// IsEmpty reports whether the payload carries no selection and no legacy
// text.
func (p OrderPayload) IsEmpty() bool {
	return p.Drink == nil && p.Food == nil && p.LegacyText == ""
}

// Normalize collapses the payload to its canonical form: selections missing
// item or variant after trimming are dropped, legacy text is trimmed and
// kept only when non-empty. Normalizing an already-normalized payload
// returns an identical value.
func (p OrderPayload) Normalize() OrderPayload {
	var out OrderPayload
	if p.Drink != nil && p.Drink.IsComplete() {
		sel := p.Drink.trimmed()
		out.Drink = &sel
	}
	if p.Food != nil && p.Food.IsComplete() {
		sel := p.Food.trimmed()
		out.Food = &sel
	}
	if text := strings.TrimSpace(p.LegacyText); text != "" {
		out.LegacyText = text
	}
	return out
}
