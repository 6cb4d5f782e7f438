package validator_test

import (
	"strings"
	"testing"

	"jumatrek/shared/validator"
)

type inquiryForm struct {
	Name    string `validate:"required,max=120" json:"name"`
	Email   string `validate:"required,email" json:"email"`
	Subject string `validate:"required,max=200" json:"subject"`
	Status  string `validate:"omitempty,oneof=new read replied archived" json:"status"`
}

func validForm() *inquiryForm {
	return &inquiryForm{
		Name:    "Jane Karki",
		Email:   "jane@example.com",
		Subject: "Permit question",
		Status:  "new",
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*inquiryForm)
		wantErr bool
	}{
		{"valid form", func(f *inquiryForm) {}, false},
		{"empty status allowed", func(f *inquiryForm) { f.Status = "" }, false},
		{"missing name", func(f *inquiryForm) { f.Name = "" }, true},
		{"malformed email", func(f *inquiryForm) { f.Email = "not-an-address" }, true},
		{"unknown status", func(f *inquiryForm) { f.Status = "bogus" }, true},
		{"subject too long", func(f *inquiryForm) { f.Subject = strings.Repeat("x", 201) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(form)

			err := validator.ValidateStruct(form)
			if tt.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name    string
		field   any
		tag     string
		wantErr bool
	}{
		{"required present", "everest_base_camp", "required", false},
		{"required empty", "", "required", true},
		{"valid email", "ops@juma-trek.com", "email", false},
		{"invalid email", "ops@", "email", true},
		{"valid oneof", "confirmed", "oneof=pending reviewed replied confirmed archived", false},
		{"invalid oneof", "closed", "oneof=pending reviewed replied confirmed archived", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)
			if tt.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"valid body", `{"name":"Jane Karki","email":"jane@example.com","subject":"Permit question","status":"new"}`, false},
		{"invalid email", `{"name":"Jane Karki","email":"nope","subject":"Permit question"}`, true},
		{"malformed json", `{"name":"Jane Karki","email":}`, true},
		{"empty body", `{}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var form inquiryForm

			err := validator.Validate(strings.NewReader(tt.body), &form)
			if tt.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidationMessage(t *testing.T) {
	err := validator.ValidateStruct(&inquiryForm{})
	if err == nil {
		t.Fatal("expected validation error for empty form")
	}

	if !strings.Contains(err.Error(), "required") {
		t.Errorf("expected message naming the required rule, got: %s", err.Error())
	}
}
