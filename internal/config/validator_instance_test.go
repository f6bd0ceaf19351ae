package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetValidator(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 != v2 {
		t.Error("GetValidator should return the same instance (singleton pattern)")
	}
}

func TestTipPercentageValidation(t *testing.T) {
	v := GetValidator()

	type sample struct {
		Tip int `validate:"tip_percentage"`
	}

	for _, p := range []int{0, 10, 15, 20, 25, 30} {
		require.NoError(t, v.Struct(sample{Tip: p}), "tip %d", p)
	}
	for _, p := range []int{-10, 5, 12, 18, 35, 100} {
		require.Error(t, v.Struct(sample{Tip: p}), "tip %d", p)
	}
}

func TestTextSizeValidation(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name     string
		size     string
		expected bool
	}{
		{"canonical name", "xxxLarge", true},
		{"accessibility", "accessibility5", true},
		{"hyphenated", "x-small", true},
		{"unknown", "huge", false},
		{"blank is optional", "", true},
	}

	type sample struct {
		Size string `validate:"omitempty,text_size"`
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(sample{Size: tt.size})
			if tt.expected && err != nil {
				t.Errorf("expected %q to be valid, got error: %v", tt.size, err)
			}
			if !tt.expected && err == nil {
				t.Errorf("expected %q to be invalid, but validation passed", tt.size)
			}
		})
	}
}

func TestLocaleNameValidation(t *testing.T) {
	v := GetValidator()

	type sample struct {
		Locale string `validate:"omitempty,locale_name"`
	}

	require.NoError(t, v.Struct(sample{Locale: "en_US.UTF-8"}))
	require.NoError(t, v.Struct(sample{Locale: "fr-CA"}))
	require.Error(t, v.Struct(sample{Locale: "POSIX"}))
	require.Error(t, v.Struct(sample{Locale: "%%%"}))
}
