package handler

import (
	"strings"
	"testing"
)

func TestValidator_ReportsJSONFieldNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&createBookingRequest{ItemID: "item-1"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"start is required", "end is required"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("message %q does not contain %q", err.Error(), want)
		}
	}
	if strings.Contains(err.Error(), "Start") {
		t.Errorf("message %q leaks the Go field name", err.Error())
	}
}

func TestValidator_EmailMessage(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&createUserRequest{Name: "Olga", Email: "not-an-email"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if got, want := err.Error(), "email must be a valid email address"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestValidator_ValidRequestPasses(t *testing.T) {
	v := NewValidator()

	if err := v.Validate(&createUserRequest{Name: "Olga", Email: "olga@example.com"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
