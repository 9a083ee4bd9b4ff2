package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Point is one labelled value of a chart series.
type Point struct {
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
}

// Series is a JSON object of label -> number decoded with its key order kept.
// The server emits windows as objects and the order of keys is the time order.
type Series []Point

func (s *Series) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("series: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("series: expected object, got %v", tok)
	}

	points := make(Series, 0)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("series: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("series: unexpected key %v", keyTok)
		}

		var raw json.Number
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("series %q: %w", key, err)
		}

		value := decimal.Zero
		if raw != "" {
			value, err = decimal.NewFromString(raw.String())
			if err != nil {
				return fmt.Errorf("series %q: %w", key, err)
			}
		}
		points = append(points, Point{Label: key, Value: value})
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("series: %w", err)
	}

	*s = points
	return nil
}

// Values returns the series values in key order.
func (s Series) Values() []decimal.Decimal {
	values := make([]decimal.Decimal, len(s))
	for i, p := range s {
		values[i] = p.Value
	}
	return values
}

// Reversed returns a copy with the point order reversed.
func (s Series) Reversed() Series {
	out := make(Series, len(s))
	for i, p := range s {
		out[len(s)-1-i] = p
	}
	return out
}
