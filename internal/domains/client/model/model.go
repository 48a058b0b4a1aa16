package model

const (
	TableName  = "clients"
	EntityName = "client"

	FieldID           = "id"
	FieldName         = "name"
	FieldBusinessName = "business_name"
	FieldAddress      = "address"
	FieldZone         = "zone"
	FieldPhone        = "phone"
	FieldNotes        = "notes"
	FieldIsMonthly    = "is_monthly"
	FieldMonthlyDay   = "monthly_day"
)

// Client is a directory entry, stored independently from appointments.
// MonthlyDay is set only for monthly clients; the flag is informational
// and drives the due-today reminder, never an automatic schedule.
type Client struct {
	ID           int64  `db:"id"`
	Name         string `db:"name"`
	BusinessName string `db:"business_name"`
	Address      string `db:"address"`
	Zone         string `db:"zone"`
	Phone        string `db:"phone"`
	Notes        string `db:"notes"`
	IsMonthly    bool   `db:"is_monthly"`
	MonthlyDay   *int   `db:"monthly_day"`
}

// DueOn reports whether the monthly reminder fires on the given day of
// month. Day 31 never matches in a 30-day month; that naive behavior is
// kept on purpose.
func (c *Client) DueOn(day int) bool {
	return c.IsMonthly && c.MonthlyDay != nil && *c.MonthlyDay == day
}
