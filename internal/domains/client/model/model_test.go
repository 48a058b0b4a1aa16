package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"xterminio/internal/domains/client/model"
)

func intPtr(i int) *int {
	return &i
}

func TestClient_DueOn(t *testing.T) {
	tests := []struct {
		name   string
		client model.Client
		day    int
		want   bool
	}{
		{
			name:   "monthly client due on its reminder day",
			client: model.Client{IsMonthly: true, MonthlyDay: intPtr(15)},
			day:    15,
			want:   true,
		},
		{
			name:   "monthly client not due on another day",
			client: model.Client{IsMonthly: true, MonthlyDay: intPtr(15)},
			day:    14,
			want:   false,
		},
		{
			name:   "non-monthly client is never due",
			client: model.Client{IsMonthly: false, MonthlyDay: intPtr(15)},
			day:    15,
			want:   false,
		},
		{
			name:   "monthly client without a reminder day is never due",
			client: model.Client{IsMonthly: true},
			day:    15,
			want:   false,
		},
		{
			name:   "day 31 does not fire on day 30",
			client: model.Client{IsMonthly: true, MonthlyDay: intPtr(31)},
			day:    30,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.client.DueOn(tt.day))
		})
	}
}
