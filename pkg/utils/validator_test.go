package utils

import (
	"testing"
)

type sampleRequest struct {
	Name     string `json:"name" validate:"required,max=5"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Priority string `json:"priority" validate:"omitempty,oneof=low medium high"`
}

func TestValidateStruct(t *testing.T) {
	valid := sampleRequest{Name: "Bank", Email: "bank@example.com", Password: "secret1"}
	if err := ValidateStruct(&valid); err != nil {
		t.Fatalf("ValidateStruct() error = %v, want nil", err)
	}

	tests := []struct {
		name        string
		req         sampleRequest
		wantField   string
		wantMessage string
	}{
		{
			name:        "missing required field",
			req:         sampleRequest{Email: "bank@example.com", Password: "secret1"},
			wantField:   "name",
			wantMessage: "name is required",
		},
		{
			name:        "invalid email",
			req:         sampleRequest{Name: "Bank", Email: "not-an-email", Password: "secret1"},
			wantField:   "email",
			wantMessage: "Please provide a valid email",
		},
		{
			name:        "too short",
			req:         sampleRequest{Name: "Bank", Email: "bank@example.com", Password: "abc"},
			wantField:   "password",
			wantMessage: "password must be at least 6 characters",
		},
		{
			name:        "too long",
			req:         sampleRequest{Name: "toolongname", Email: "bank@example.com", Password: "secret1"},
			wantField:   "name",
			wantMessage: "name cannot be more than 5 characters",
		},
		{
			name:        "not in allowed set",
			req:         sampleRequest{Name: "Bank", Email: "bank@example.com", Password: "secret1", Priority: "urgent"},
			wantField:   "priority",
			wantMessage: "priority must be one of: low, medium, high",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.req)
			if err == nil {
				t.Fatal("ValidateStruct() error = nil, want validation error")
			}

			fieldErrors := GetValidationErrors(err)
			if len(fieldErrors) != 1 {
				t.Fatalf("GetValidationErrors() returned %d errors, want 1: %+v", len(fieldErrors), fieldErrors)
			}
			if fieldErrors[0].Field != tt.wantField {
				t.Errorf("Field = %q, want %q", fieldErrors[0].Field, tt.wantField)
			}
			if fieldErrors[0].Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", fieldErrors[0].Message, tt.wantMessage)
			}
		})
	}
}
