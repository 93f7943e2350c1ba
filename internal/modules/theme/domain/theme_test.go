package domain

import (
	"errors"
	"testing"
)

func TestParseTheme(t *testing.T) {
	cases := []struct {
		input string
		want  Theme
		err   bool
	}{
		{input: "light", want: Light},
		{input: " DARK ", want: Dark},
		{input: "sepia", err: true},
		{input: "", err: true},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseTheme(tc.input)
			if tc.err {
				if !errors.Is(err, ErrInvalidTheme) {
					t.Fatalf("expected ErrInvalidTheme, got %v", err)
				}
				return
			}
			if err != nil || got != tc.want {
				t.Fatalf("ParseTheme(%q) = %q, %v", tc.input, got, err)
			}
		})
	}
}

func TestToggle(t *testing.T) {
	if Light.Toggle() != Dark || Dark.Toggle() != Light {
		t.Fatal("expected toggle to flip the theme")
	}
	if !Dark.IsDark() || Light.IsDark() {
		t.Fatal("unexpected IsDark")
	}
}
