package dto

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams carries result ordering for list queries. The agenda never
// paginates; every listing is a full scan over a small table.
type QueryParams struct {
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// SortByDateTime orders appointment listings the way the agenda displays
// them: chronologically within the selected range.
func SortByDateTime() QueryParams {
	return QueryParams{SortBy: "date, time", SortDir: SortDirAsc}
}

// SortByBusinessName orders client listings by (business_name, name);
// SQLite sorts NULL and empty strings first, which is the wanted order.
func SortByBusinessName() QueryParams {
	return QueryParams{SortBy: "business_name, name", SortDir: SortDirAsc}
}
