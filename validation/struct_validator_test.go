package validation

import (
	"strings"
	"testing"

	"github.com/kbukum/validify/errors"
)

type testSettings struct {
	Name     string            `mapstructure:"name" validate:"required"`
	Env      string            `mapstructure:"environment" validate:"oneof=development staging production"`
	Messages map[string]string `mapstructure:"messages" validate:"dive,keys,oneof=empty min max required,endkeys"`
	Retries  int               `validate:"min=0,max=5"`
}

func TestValidateStructValid(t *testing.T) {
	err := ValidateStruct(testSettings{
		Name:     "svc",
		Env:      "staging",
		Messages: map[string]string{"min": "too short"},
	})
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestValidateStructInvalid(t *testing.T) {
	err := ValidateStruct(testSettings{Env: "qa", Retries: 9})
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	for _, want := range []string{"name: is required", "environment: must be one of", "retries: must be at most 5"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected %q in %q", want, msg)
		}
	}

	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatalf("expected *errors.AppError, got %T", err)
	}
	fields, ok := appErr.Details["fields"].([]FieldError)
	if !ok || len(fields) != 3 {
		t.Errorf("expected three field errors, got %#v", appErr.Details["fields"])
	}
}

func TestValidateStructMapKeys(t *testing.T) {
	err := ValidateStruct(testSettings{
		Name:     "svc",
		Env:      "production",
		Messages: map[string]string{"base": "nope"},
	})
	if err == nil {
		t.Fatal("expected error for a key outside the allow-list")
	}
	if !strings.Contains(err.Error(), "messages[base]") {
		t.Errorf("expected the offending key in %q", err.Error())
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := map[string]string{
		"Name":        "name",
		"MaxRetries":  "max_retries",
		"already_low": "already_low",
	}
	for in, want := range tests {
		if got := toSnakeCase(in); got != want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}
