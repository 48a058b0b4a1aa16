package dto

import (
	"xterminio/internal/domains/client/model"
)

type CreateClientRequest struct {
	Name         string `json:"name" validate:"required,max=255"`
	BusinessName string `json:"business_name" validate:"omitempty,max=255"`
	Address      string `json:"address" validate:"omitempty,max=255"`
	Zone         string `json:"zone" validate:"omitempty,max=255"`
	Phone        string `json:"phone" validate:"omitempty,max=50"`
	Notes        string `json:"notes"`
	IsMonthly    bool   `json:"is_monthly"`
	MonthlyDay   *int   `json:"monthly_day" validate:"required_if=IsMonthly true,omitempty,min=1,max=31"`
}

func (c *CreateClientRequest) ToModel() model.Client {
	// The reminder day only means something for monthly clients; anything
	// submitted alongside is_monthly=false is discarded.
	monthlyDay := c.MonthlyDay
	if !c.IsMonthly {
		monthlyDay = nil
	}

	return model.Client{
		Name:         c.Name,
		BusinessName: c.BusinessName,
		Address:      c.Address,
		Zone:         c.Zone,
		Phone:        c.Phone,
		Notes:        c.Notes,
		IsMonthly:    c.IsMonthly,
		MonthlyDay:   monthlyDay,
	}
}

type ClientResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	BusinessName string `json:"business_name"`
	Address      string `json:"address"`
	Zone         string `json:"zone"`
	Phone        string `json:"phone"`
	Notes        string `json:"notes"`
	IsMonthly    bool   `json:"is_monthly"`
	MonthlyDay   *int   `json:"monthly_day"`
}

func (r *ClientResponse) FromModel(mod model.Client) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.BusinessName = mod.BusinessName
	r.Address = mod.Address
	r.Zone = mod.Zone
	r.Phone = mod.Phone
	r.Notes = mod.Notes
	r.IsMonthly = mod.IsMonthly
	r.MonthlyDay = mod.MonthlyDay
}

type GetClientsResponse struct {
	Clients []ClientResponse `json:"clients"`
	Total   int              `json:"total"`
}

func (r *GetClientsResponse) FromModels(models []model.Client) {
	r.Total = len(models)

	r.Clients = make([]ClientResponse, len(models))
	for i, mod := range models {
		r.Clients[i].FromModel(mod)
	}
}
