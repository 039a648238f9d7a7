package otp

import (
	"errors"
	"testing"
)

func TestGenerate(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, err := GenerateDefault()
		if err != nil {
			t.Fatalf("GenerateDefault() error = %v", err)
		}
		if len(code) != DefaultLength {
			t.Fatalf("code %q has length %d, want %d", code, len(code), DefaultLength)
		}
		for _, r := range code {
			if r < '0' || r > '9' {
				t.Fatalf("code %q contains non-digit %q", code, r)
			}
		}
	}
}

func TestGenerateLengthBounds(t *testing.T) {
	for _, length := range []int{0, 3, 11} {
		if _, err := Generate(length); !errors.Is(err, ErrInvalidLength) {
			t.Errorf("Generate(%d) error = %v, want ErrInvalidLength", length, err)
		}
	}
	for _, length := range []int{4, 10} {
		code, err := Generate(length)
		if err != nil {
			t.Errorf("Generate(%d) error = %v", length, err)
		}
		if len(code) != length {
			t.Errorf("Generate(%d) length = %d", length, len(code))
		}
	}
}
