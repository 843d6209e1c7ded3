package core

import "testing"

func TestRuntimeConfigWithDefaults(t *testing.T) {
	tests := []struct {
		name string
		in   RuntimeConfig
		want RuntimeConfig
	}{
		{"zero", RuntimeConfig{}, RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}},
		{"keeps values", RuntimeConfig{ScreenW: 100, ScreenH: 40, TickRate: 30, Seed: 9}, RuntimeConfig{ScreenW: 100, ScreenH: 40, TickRate: 30, Seed: 9}},
		{"half sized", RuntimeConfig{ScreenW: 100, TickRate: -1, Seed: 3}, RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 3}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.WithDefaults(); got != tc.want {
				t.Errorf("WithDefaults() = %+v, expected %+v", got, tc.want)
			}
		})
	}
}

func TestTickDuration(t *testing.T) {
	if got := (RuntimeConfig{TickRate: 50}).TickDuration(); got != 20 {
		t.Errorf("TickDuration() = %v, expected 20", got)
	}
	if got := (RuntimeConfig{}).TickDuration(); got != 1000.0/60.0 {
		t.Errorf("TickDuration() with no rate = %v, expected 16.67", got)
	}
}
