package validation_test

import (
	"errors"
	"testing"

	"github.com/iiuc/alumnihub/internal/pkg/apperrors"
	"github.com/iiuc/alumnihub/internal/pkg/validation"
)

func TestValidateEmail(t *testing.T) {
	cases := []struct {
		email string
		valid bool
	}{
		{"tanvir@example.com", true},
		{"first.last+tag@sub.example.org", true},
		{"Tanvir@Example.COM", true},
		{"", false},
		{"not-an-email", false},
		{"missing@tld", false},
		{"@example.com", false},
	}
	for _, c := range cases {
		err := validation.ValidateEmail(c.email)
		if c.valid && err != nil {
			t.Errorf("ValidateEmail(%q) = %v, want nil", c.email, err)
		}
		if !c.valid && !errors.Is(err, apperrors.ErrInvalidEmail) {
			t.Errorf("ValidateEmail(%q) = %v, want ErrInvalidEmail", c.email, err)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	if err := validation.ValidatePassword("secret123"); err != nil {
		t.Fatalf("ValidatePassword: %v", err)
	}
	if err := validation.ValidatePassword("short"); !errors.Is(err, apperrors.ErrInvalidPassword) {
		t.Fatalf("expected ErrInvalidPassword for a short password, got %v", err)
	}
	if err := validation.ValidatePassword(""); !errors.Is(err, apperrors.ErrInvalidPassword) {
		t.Fatalf("expected ErrInvalidPassword for an empty password, got %v", err)
	}
}

func TestValidateSignUp(t *testing.T) {
	if err := validation.ValidateSignUp("a@example.com", "secret123", "secret123", "Tanvir Ahmed"); err != nil {
		t.Fatalf("valid sign-up rejected: %v", err)
	}

	err := validation.ValidateSignUp("a@example.com", "secret123", "different", "Tanvir Ahmed")
	if !errors.Is(err, apperrors.ErrPasswordMismatch) {
		t.Fatalf("expected ErrPasswordMismatch, got %v", err)
	}

	err = validation.ValidateSignUp("a@example.com", "secret123", "secret123", "X")
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected a validation error for a one-letter name, got %v", err)
	}
}

func TestValidateLogin(t *testing.T) {
	if err := validation.ValidateLogin("a@example.com", "anything"); err != nil {
		t.Fatalf("valid login rejected: %v", err)
	}
	if err := validation.ValidateLogin("bad", "anything"); !errors.Is(err, apperrors.ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
	if err := validation.ValidateLogin("a@example.com", ""); !errors.Is(err, apperrors.ErrInvalidPassword) {
		t.Fatalf("expected ErrInvalidPassword, got %v", err)
	}
}

func TestStringValidation(t *testing.T) {
	if !validation.NewStringValidation("hello").WithMinLength(2).WithMaxLength(10).Validate() {
		t.Fatal("in-range value rejected")
	}
	if validation.NewStringValidation("h").WithMinLength(2).Validate() {
		t.Fatal("too-short value accepted")
	}
	if validation.NewStringValidation("").Validate() {
		t.Fatal("required empty value accepted")
	}
	if !validation.NewStringValidation("").WithRequired(false).WithMinLength(5).Validate() {
		t.Fatal("optional empty value must skip the other rules")
	}
}
