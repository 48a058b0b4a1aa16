package shared

import (
	"xterminio/shared/dto"
)

// FilterByID builds the single-row filter used by status updates, deletes
// and lookups.
func FilterByID(id int64, fieldID string) dto.FilterGroup {
	return dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
			},
		},
	}
}

// TruncateClock reduces a time-of-day string to minute precision (HH:MM),
// regardless of whether the caller supplied seconds.
func TruncateClock(clock string) string {
	const clockLen = len("15:04")

	if len(clock) > clockLen {
		return clock[:clockLen]
	}

	return clock
}
