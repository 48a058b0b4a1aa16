package dto_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"xterminio/internal/domains/appointment/model"
	"xterminio/internal/domains/appointment/model/dto"
	"xterminio/shared/failure"
)

func TestCreateAppointmentRequest_ToModel(t *testing.T) {
	tests := []struct {
		name       string
		req        dto.CreateAppointmentRequest
		wantPrice  decimal.NullDecimal
		wantStatus string
		wantTime   string
	}{
		{
			name: "agreed price is stored",
			req: dto.CreateAppointmentRequest{
				ClientName: "Panadería La Espiga",
				Date:       "2026-09-01",
				Time:       "10:30",
				Price:      decimal.NewFromInt(850),
				Status:     model.StatusConfirmado,
			},
			wantPrice:  decimal.NullDecimal{Decimal: decimal.NewFromInt(850), Valid: true},
			wantStatus: model.StatusConfirmado,
			wantTime:   "10:30",
		},
		{
			name: "zero price is stored as absent",
			req: dto.CreateAppointmentRequest{
				ClientName: "Casa García",
				Date:       "2026-09-01",
				Time:       "10:30",
			},
			wantPrice:  decimal.NullDecimal{},
			wantStatus: model.StatusPendiente,
			wantTime:   "10:30",
		},
		{
			name: "negative price is stored as absent",
			req: dto.CreateAppointmentRequest{
				ClientName: "Casa García",
				Date:       "2026-09-01",
				Time:       "10:30",
				Price:      decimal.NewFromInt(-100),
			},
			wantPrice:  decimal.NullDecimal{},
			wantStatus: model.StatusPendiente,
			wantTime:   "10:30",
		},
		{
			name: "seconds are truncated from the time of day",
			req: dto.CreateAppointmentRequest{
				ClientName: "Casa García",
				Date:       "2026-09-01",
				Time:       "10:30:45",
			},
			wantPrice:  decimal.NullDecimal{},
			wantStatus: model.StatusPendiente,
			wantTime:   "10:30",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mod := tt.req.ToModel()

			assert.Equal(t, tt.req.ClientName, mod.ClientName)
			assert.Equal(t, tt.req.Date, mod.Date)
			assert.Equal(t, tt.wantTime, mod.Time)
			assert.Equal(t, tt.wantStatus, mod.Status)
			assert.Equal(t, tt.wantPrice.Valid, mod.Price.Valid)
			assert.NotEmpty(t, mod.CreatedAt)

			if tt.wantPrice.Valid {
				assert.True(t, tt.wantPrice.Decimal.Equal(mod.Price.Decimal))
			}
		})
	}
}

func TestListAppointmentsRequest_ApplyRange(t *testing.T) {
	today := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		req          dto.ListAppointmentsRequest
		wantErr      bool
		wantDateFrom string
		wantDateTo   string
	}{
		{
			name:         "today preset covers a single day",
			req:          dto.ListAppointmentsRequest{Range: model.RangeHoy},
			wantDateFrom: "2026-03-10",
			wantDateTo:   "2026-03-10",
		},
		{
			name:         "next seven days preset is inclusive on both ends",
			req:          dto.ListAppointmentsRequest{Range: model.RangeProximos},
			wantDateFrom: "2026-03-10",
			wantDateTo:   "2026-03-17",
		},
		{
			name: "all preset clears explicit bounds",
			req: dto.ListAppointmentsRequest{
				Range:    model.RangeTodos,
				DateFrom: "2026-01-01",
				DateTo:   "2026-12-31",
			},
			wantDateFrom: "",
			wantDateTo:   "",
		},
		{
			name: "no preset keeps explicit bounds",
			req: dto.ListAppointmentsRequest{
				DateFrom: "2026-01-01",
				DateTo:   "2026-12-31",
			},
			wantDateFrom: "2026-01-01",
			wantDateTo:   "2026-12-31",
		},
		{
			name:    "unknown preset is rejected",
			req:     dto.ListAppointmentsRequest{Range: "Mañana"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.ApplyRange(today)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, 400, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantDateFrom, tt.req.DateFrom)
			assert.Equal(t, tt.wantDateTo, tt.req.DateTo)
		})
	}
}

func TestListAppointmentsRequest_Filter(t *testing.T) {
	tests := []struct {
		name        string
		req         dto.ListAppointmentsRequest
		wantFilters int
	}{
		{
			name:        "no criteria means no predicate",
			req:         dto.ListAppointmentsRequest{},
			wantFilters: 0,
		},
		{
			name:        "the Todos sentinel does not filter by status",
			req:         dto.ListAppointmentsRequest{Status: model.StatusTodos},
			wantFilters: 0,
		},
		{
			name:        "a concrete status filters",
			req:         dto.ListAppointmentsRequest{Status: model.StatusPendiente},
			wantFilters: 1,
		},
		{
			name: "date bounds and status combine",
			req: dto.ListAppointmentsRequest{
				DateFrom: "2026-03-01",
				DateTo:   "2026-03-31",
				Status:   model.StatusCobrado,
			},
			wantFilters: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			group := tt.req.Filter()

			assert.Len(t, group.Filters, tt.wantFilters)
		})
	}
}

func TestGetAppointmentsResponse_FromModels(t *testing.T) {
	models := []model.Appointment{
		{ID: 1, ClientName: "Casa García", Date: "2026-03-10", Time: "09:00", Status: model.StatusPendiente},
		{ID: 2, ClientName: "Panadería La Espiga", Date: "2026-03-10", Time: "11:00", Status: model.StatusCobrado},
	}

	var res dto.GetAppointmentsResponse
	res.FromModels(models)

	assert.Equal(t, 2, res.Total)
	assert.Len(t, res.Appointments, 2)
	assert.Equal(t, int64(1), res.Appointments[0].ID)
	assert.Equal(t, "Panadería La Espiga", res.Appointments[1].ClientName)
}
