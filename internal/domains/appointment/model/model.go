package model

import "github.com/shopspring/decimal"

const (
	TableName  = "appointments"
	EntityName = "appointment"

	FieldID          = "id"
	FieldClientName  = "client_name"
	FieldServiceType = "service_type"
	FieldPestType    = "pest_type"
	FieldAddress     = "address"
	FieldZone        = "zone"
	FieldPhone       = "phone"
	FieldDate        = "date"
	FieldTime        = "time"
	FieldPrice       = "price"
	FieldStatus      = "status"
	FieldNotes       = "notes"
	FieldCreatedAt   = "created_at"
)

// Status values are exact, case-sensitive strings used both as stored
// values and as UI labels.
const (
	StatusPendiente  = "Pendiente"
	StatusConfirmado = "Confirmado"
	StatusRealizado  = "Realizado"
	StatusCobrado    = "Cobrado"

	// StatusTodos is a filter-only sentinel meaning "no status filter".
	// It is never stored.
	StatusTodos = "Todos"
)

// Service type labels are advisory; the column stores free-form text.
const (
	ServiceTypeCasa       = "Casa"
	ServiceTypeNegocio    = "Negocio"
	ServiceTypeCondominio = "Condominio"
	ServiceTypeOtro       = "Otro"
)

// Date-range presets offered by the agenda view.
const (
	RangeHoy      = "Hoy"
	RangeProximos = "Próximos 7 días"
	RangeTodos    = "Todos"
)

// Appointment is one scheduled service visit. Client contact fields are a
// snapshot taken at creation time; there is no foreign key to the client
// directory.
type Appointment struct {
	ID          int64               `db:"id"`
	ClientName  string              `db:"client_name"`
	ServiceType string              `db:"service_type"`
	PestType    string              `db:"pest_type"`
	Address     string              `db:"address"`
	Zone        string              `db:"zone"`
	Phone       string              `db:"phone"`
	Date        string              `db:"date"`
	Time        string              `db:"time"`
	Price       decimal.NullDecimal `db:"price"`
	Status      string              `db:"status"`
	Notes       string              `db:"notes"`
	CreatedAt   string              `db:"created_at"`
}
