package constant

const (
	RequestHeaderContentType = "Content-Type"
	RequestHeaderRequestID   = "X-Request-ID"
	ContentTypeJSON          = "application/json"
)

const (
	RequestParamID       = "id"
	RequestParamDateFrom = "date_from"
	RequestParamDateTo   = "date_to"
	RequestParamStatus   = "status"
	RequestParamRange    = "range"
	RequestParamToday    = "today"
)

const (
	OtelHandlerScopeName    = "handler"
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelQueryAttributeKey   = "db.query"
)

const (
	// DateFormat is the storage format for record timestamps.
	DateFormat = "2006-01-02T15:04:05Z07:00"
	// DayFormat is the storage format for appointment dates; lexicographic
	// order on this layout matches calendar order.
	DayFormat = "2006-01-02"
	// ClockFormat is the storage format for appointment times, truncated
	// to the minute.
	ClockFormat = "15:04"
)

const (
	ResponseErrorPrepareShutdown = "Shutting down, no longer accepting requests"
	ResponseErrorUnhealthy       = "Service is unhealthy"
)
