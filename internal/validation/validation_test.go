package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func assertFieldError(t *testing.T, err error, field string) {
	t.Helper()

	var vErr *Error
	if !errors.As(err, &vErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if vErr.Field != field {
		t.Errorf("error field = %q, want %q", vErr.Field, field)
	}
	if vErr.Message == "" {
		t.Error("validation error has an empty message")
	}
}

func TestUserID(t *testing.T) {
	tests := []struct {
		name    string
		userID  string
		wantErr bool
	}{
		{"valid", "user123", false},
		{"single character", "u", false},
		{"max length", strings.Repeat("a", 100), false},
		{"empty", "", true},
		{"too long", strings.Repeat("a", 101), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UserID(tt.userID)
			if tt.wantErr {
				assertFieldError(t, err, "user_id")
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.userID {
				t.Errorf("canonical id = %q, want %q", got, tt.userID)
			}
		})
	}
}

func TestProductID(t *testing.T) {
	if _, err := ProductID("P001"); err != nil {
		t.Errorf("unexpected error for valid id: %v", err)
	}

	_, err := ProductID("")
	assertFieldError(t, err, "product_id")
}

func TestRating(t *testing.T) {
	for _, valid := range []float64{0, 2.5, 5} {
		if err := Rating(valid); err != nil {
			t.Errorf("Rating(%g) unexpected error: %v", valid, err)
		}
	}
	for _, invalid := range []float64{-0.1, 5.1, 100} {
		assertFieldError(t, Rating(invalid), "rating")
	}
}

func TestLimit(t *testing.T) {
	tests := []struct {
		name    string
		limit   int
		max     int
		wantErr bool
	}{
		{"lower bound", 1, 50, false},
		{"upper bound", 50, 50, false},
		{"zero", 0, 50, true},
		{"negative", -3, 50, true},
		{"above max", 51, 50, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Limit(tt.limit, tt.max)
			if tt.wantErr {
				assertFieldError(t, err, "limit")
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.limit {
				t.Errorf("Limit = %d, want %d", got, tt.limit)
			}
		})
	}
}

func TestProperty_LimitAcceptsExactlyTheValidRange(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("limit accepted iff within [1, max]", prop.ForAll(
		func(limit, max int) bool {
			_, err := Limit(limit, max)
			wantValid := limit >= 1 && limit <= max
			return (err == nil) == wantValid
		},
		gen.IntRange(-100, 200),
		gen.IntRange(1, 100),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestCategory(t *testing.T) {
	tests := []struct {
		name     string
		category string
		want     string
		wantErr  bool
	}{
		{"canonical", "Electronics", "Electronics", false},
		{"lower case", "electronics", "Electronics", false},
		{"mixed case", "hOmE & kItChEn", "Home & Kitchen", false},
		{"unknown", "Foo", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Category(tt.category)
			if tt.wantErr {
				assertFieldError(t, err, "category")
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("canonical category = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInteractionType(t *testing.T) {
	for _, valid := range []string{"view", "purchase", "add_to_cart", "wishlist"} {
		got, err := InteractionType(valid)
		if err != nil {
			t.Errorf("InteractionType(%q) unexpected error: %v", valid, err)
		}
		if string(got) != valid {
			t.Errorf("InteractionType(%q) = %q", valid, got)
		}
	}

	for _, invalid := range []string{"", "click", "VIEW"} {
		_, err := InteractionType(invalid)
		assertFieldError(t, err, "interaction_type")
	}
}
