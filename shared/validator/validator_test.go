package validator_test

import (
	"strings"
	"testing"
	"xterminio/shared/validator"
)

type appointmentForm struct {
	ClientName string `validate:"required" json:"client_name"`
	Date       string `validate:"required,datetime=2006-01-02" json:"date"`
	Status     string `validate:"omitempty,oneof=Pendiente Confirmado Realizado Cobrado" json:"status"`
	MonthlyDay int    `validate:"omitempty,min=1,max=31" json:"monthly_day"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        appointmentForm
		expectError bool
	}{
		{
			name: "valid struct",
			data: appointmentForm{
				ClientName: "Tacos El Primo",
				Date:       "2025-06-01",
				Status:     "Pendiente",
				MonthlyDay: 15,
			},
			expectError: false,
		},
		{
			name: "missing required client name",
			data: appointmentForm{
				Date: "2025-06-01",
			},
			expectError: true,
		},
		{
			name: "malformed date",
			data: appointmentForm{
				ClientName: "Ana",
				Date:       "01/06/2025",
			},
			expectError: true,
		},
		{
			name: "status outside the vocabulary",
			data: appointmentForm{
				ClientName: "Ana",
				Date:       "2025-06-01",
				Status:     "Cancelado",
			},
			expectError: true,
		},
		{
			name: "monthly day out of range",
			data: appointmentForm{
				ClientName: "Ana",
				Date:       "2025-06-01",
				MonthlyDay: 32,
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidate_DecodesBody(t *testing.T) {
	body := strings.NewReader(`{"client_name":"Tacos El Primo","date":"2025-06-01"}`)

	var form appointmentForm
	if err := validator.Validate(body, &form); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if form.ClientName != "Tacos El Primo" {
		t.Errorf("expected decoded client name, got %q", form.ClientName)
	}
}

func TestValidate_RejectsMalformedJSON(t *testing.T) {
	body := strings.NewReader(`{"client_name":`)

	var form appointmentForm
	if err := validator.Validate(body, &form); err == nil {
		t.Error("expected error for malformed JSON, got nil")
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar(15, "min=1,max=31"); err != nil {
		t.Errorf("expected no error for valid day, got %v", err)
	}

	if err := validator.ValidateVar(0, "min=1,max=31"); err == nil {
		t.Error("expected error for day below range, got nil")
	}
}
