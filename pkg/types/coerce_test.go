package types

import (
	"math"
	"testing"
)

func TestTruthy(t *testing.T) {
	type flag bool
	var nilPtr *Item
	var nilSlice []string
	var nilMap map[string]any

	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"nil", nil, false},
		{"false", false, false},
		{"true", true, true},
		{"named bool", flag(true), true},
		{"empty string", "", false},
		{"zero string", "0", true},
		{"zero int", 0, false},
		{"negative int", -3, true},
		{"zero uint", uint(0), false},
		{"zero float", 0.0, false},
		{"NaN", math.NaN(), false},
		{"infinity", math.Inf(1), true},
		{"nil pointer", nilPtr, false},
		{"nil slice", nilSlice, false},
		{"nil map", nilMap, false},
		{"empty slice", []any{}, true},
		{"empty map", map[string]any{}, true},
		{"struct", struct{}{}, true},
		{"func", func() {}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truthy(tt.value); got != tt.want {
				t.Errorf("Truthy(%#v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
