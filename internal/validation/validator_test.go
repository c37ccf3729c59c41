// MLOps-1 - Movie Recommendation Service
// Copyright 2026 MLOps-1 contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sebastiandiazro/MLOps-1

package validation

import (
	"strings"
	"testing"
)

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil {
		t.Fatal("GetValidator() returned nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same instance")
	}
}

type titleRequest struct {
	Title string `json:"title" validate:"required,notblank,max=500"`
}

type pageRequest struct {
	Limit  int    `json:"limit" validate:"min=1,max=50"`
	Format string `json:"format,omitempty" validate:"omitempty,oneof=json csv"`
	Secret string `json:"-" validate:"omitempty,max=3"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name      string
		input     interface{}
		wantOK    bool
		wantField string
		wantTag   string
		wantMsg   string
	}{
		{name: "valid title", input: &titleRequest{Title: "Toy Story"}, wantOK: true},
		{name: "title with surrounding spaces", input: &titleRequest{Title: "  Heat "}, wantOK: true},
		{name: "empty title", input: &titleRequest{}, wantField: "title", wantTag: "required", wantMsg: "title is required"},
		{name: "blank title", input: &titleRequest{Title: " \t "}, wantField: "title", wantTag: "notblank", wantMsg: "title must not be blank"},
		{
			name:      "title too long",
			input:     &titleRequest{Title: strings.Repeat("a", 501)},
			wantField: "title",
			wantTag:   "max",
			wantMsg:   "title must be at most 500 characters",
		},
		{name: "limit too small", input: &pageRequest{Limit: 0}, wantField: "limit", wantTag: "min", wantMsg: "limit must be at least 1"},
		{name: "bad enum", input: &pageRequest{Limit: 5, Format: "xml"}, wantField: "format", wantTag: "oneof", wantMsg: "format must be one of: json csv"},
		{name: "json dash falls back to Go name", input: &pageRequest{Limit: 5, Secret: "toolong"}, wantField: "Secret", wantTag: "max"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.input)
			if tt.wantOK {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected validation error")
			}
			errs := err.Errors()
			if len(errs) != 1 {
				t.Fatalf("got %d errors, want 1: %v", len(errs), err)
			}
			if errs[0].Field() != tt.wantField {
				t.Errorf("Field() = %q, want %q", errs[0].Field(), tt.wantField)
			}
			if errs[0].Tag() != tt.wantTag {
				t.Errorf("Tag() = %q, want %q", errs[0].Tag(), tt.wantTag)
			}
			if tt.wantMsg != "" && errs[0].Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", errs[0].Error(), tt.wantMsg)
			}
		})
	}
}

func TestToAPIError(t *testing.T) {
	t.Run("single error carries field details", func(t *testing.T) {
		err := ValidateStruct(&titleRequest{})
		if err == nil {
			t.Fatal("expected error")
		}
		apiErr := err.ToAPIError()
		if apiErr.Code != ErrorCode {
			t.Errorf("Code = %q", apiErr.Code)
		}
		if apiErr.Details["field"] != "title" {
			t.Errorf("Details[field] = %v", apiErr.Details["field"])
		}
	})

	t.Run("multiple errors are joined", func(t *testing.T) {
		type twoFields struct {
			A string `json:"a" validate:"required"`
			B string `json:"b" validate:"required"`
		}
		err := ValidateStruct(&twoFields{})
		if err == nil {
			t.Fatal("expected error")
		}
		apiErr := err.ToAPIError()
		if apiErr.Message != "a is required; b is required" {
			t.Errorf("Message = %q", apiErr.Message)
		}
		fields, ok := apiErr.Details["fields"].([]map[string]interface{})
		if !ok || len(fields) != 2 {
			t.Errorf("Details[fields] = %#v", apiErr.Details["fields"])
		}
	})

	t.Run("empty error set", func(t *testing.T) {
		apiErr := (&RequestValidationError{}).ToAPIError()
		if apiErr.Code != ErrorCode || apiErr.Message != "Validation failed" {
			t.Errorf("got %+v", apiErr)
		}
	})
}

func BenchmarkValidateStruct(b *testing.B) {
	req := &titleRequest{Title: "The Lord of the Rings"}
	for i := 0; i < b.N; i++ {
		_ = ValidateStruct(req)
	}
}
