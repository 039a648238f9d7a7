package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"unauthorized", Unauthorized("not logged in"), KindUnauthorized},
		{"validation", Validation("patient not found"), KindValidation},
		{"transport", Transport("select failed", errors.New("boom")), KindTransport},
		{"missing config", MissingConfig("supabase.url"), KindMissingConfig},
		{"wrapped", fmt.Errorf("outer: %w", Validation("inner")), KindValidation},
		{"foreign error", errors.New("plain"), KindUnexpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	err := Transport("supabase select failed", errors.New("connection refused"))
	want := "supabase select failed: connection refused"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIsMatchesEqualSentinels(t *testing.T) {
	a := Unauthorized("invalid email or password")
	b := Unauthorized("invalid email or password")
	if !errors.Is(a, b) {
		t.Error("expected two equal unauthorized errors to match")
	}
	if errors.Is(a, Unauthorized("account disabled")) {
		t.Error("different messages must not match")
	}
	if errors.Is(a, Validation("invalid email or password")) {
		t.Error("different kinds must not match")
	}
}
