package dto

import (
	"time"
	"xterminio/internal/domains/appointment/model"
	"xterminio/shared"
	"xterminio/shared/constant"
	gDto "xterminio/shared/dto"
	"xterminio/shared/failure"
	"xterminio/shared/timezone"

	"github.com/shopspring/decimal"
)

type CreateAppointmentRequest struct {
	// ClientID optionally points at a saved client whose contact fields
	// are copied into the appointment at creation time.
	ClientID    *int64          `json:"client_id" validate:"omitempty,min=1"`
	ClientName  string          `json:"client_name" validate:"required,max=255"`
	ServiceType string          `json:"service_type" validate:"omitempty,max=100"`
	PestType    string          `json:"pest_type" validate:"omitempty,max=255"`
	Address     string          `json:"address" validate:"omitempty,max=255"`
	Zone        string          `json:"zone" validate:"omitempty,max=255"`
	Phone       string          `json:"phone" validate:"omitempty,max=50"`
	Date        string          `json:"date" validate:"required,datetime=2006-01-02"`
	Time        string          `json:"time" validate:"required"`
	Price       decimal.Decimal `json:"price"`
	Status      string          `json:"status" validate:"omitempty,oneof=Pendiente Confirmado Realizado Cobrado"`
	Notes       string          `json:"notes"`
}

func (c *CreateAppointmentRequest) ToModel() model.Appointment {
	// A zero or negative price means "not agreed yet" and is stored as
	// absent, never as 0.
	price := decimal.NullDecimal{}
	if c.Price.IsPositive() {
		price = decimal.NullDecimal{Decimal: c.Price, Valid: true}
	}

	status := c.Status
	if status == "" {
		status = model.StatusPendiente
	}

	return model.Appointment{
		ClientName:  c.ClientName,
		ServiceType: c.ServiceType,
		PestType:    c.PestType,
		Address:     c.Address,
		Zone:        c.Zone,
		Phone:       c.Phone,
		Date:        c.Date,
		Time:        shared.TruncateClock(c.Time),
		Price:       price,
		Status:      status,
		Notes:       c.Notes,
		CreatedAt:   timezone.Now().Format(constant.DateFormat),
	}
}

type ListAppointmentsRequest struct {
	DateFrom string `json:"date_from" validate:"omitempty,datetime=2006-01-02"`
	DateTo   string `json:"date_to" validate:"omitempty,datetime=2006-01-02"`
	Status   string `json:"status" validate:"omitempty,oneof=Todos Pendiente Confirmado Realizado Cobrado"`
	Range    string `json:"range" validate:"omitempty"`
}

// ApplyRange resolves a named date-range preset against an explicit
// reference day. The caller decides what "today" is, which keeps the
// computation deterministic under test.
func (r *ListAppointmentsRequest) ApplyRange(today time.Time) error {
	switch r.Range {
	case "":
		return nil
	case model.RangeHoy:
		day := today.Format(constant.DayFormat)
		r.DateFrom = day
		r.DateTo = day
	case model.RangeProximos:
		r.DateFrom = today.Format(constant.DayFormat)
		r.DateTo = today.AddDate(0, 0, 7).Format(constant.DayFormat)
	case model.RangeTodos:
		r.DateFrom = ""
		r.DateTo = ""
	default:
		return failure.BadRequestFromString("unknown date range: " + r.Range) //nolint:wrapcheck
	}

	return nil
}

// Filter translates the request into the listing predicate: inclusive date
// bounds, and a status match unless the sentinel "Todos" (or nothing) was
// asked for.
func (r *ListAppointmentsRequest) Filter() gDto.FilterGroup {
	group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if r.DateFrom != "" {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldDate,
			ArgName:  "date_from",
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    r.DateFrom,
		})
	}

	if r.DateTo != "" {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldDate,
			ArgName:  "date_to",
			Operator: gDto.FilterOperatorLessEq,
			Value:    r.DateTo,
		})
	}

	if r.Status != "" && r.Status != model.StatusTodos {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    r.Status,
		})
	}

	return group
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pendiente Confirmado Realizado Cobrado"`
}

type AppointmentResponse struct {
	ID          int64               `json:"id"`
	ClientName  string              `json:"client_name"`
	ServiceType string              `json:"service_type"`
	PestType    string              `json:"pest_type"`
	Address     string              `json:"address"`
	Zone        string              `json:"zone"`
	Phone       string              `json:"phone"`
	Date        string              `json:"date"`
	Time        string              `json:"time"`
	Price       decimal.NullDecimal `json:"price"`
	Status      string              `json:"status"`
	Notes       string              `json:"notes"`
	CreatedAt   string              `json:"created_at"`
}

func (r *AppointmentResponse) FromModel(mod model.Appointment) {
	r.ID = mod.ID
	r.ClientName = mod.ClientName
	r.ServiceType = mod.ServiceType
	r.PestType = mod.PestType
	r.Address = mod.Address
	r.Zone = mod.Zone
	r.Phone = mod.Phone
	r.Date = mod.Date
	r.Time = mod.Time
	r.Price = mod.Price
	r.Status = mod.Status
	r.Notes = mod.Notes
	r.CreatedAt = mod.CreatedAt
}

type GetAppointmentsResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

func (r *GetAppointmentsResponse) FromModels(models []model.Appointment) {
	r.Total = len(models)

	r.Appointments = make([]AppointmentResponse, len(models))
	for i, mod := range models {
		r.Appointments[i].FromModel(mod)
	}
}
