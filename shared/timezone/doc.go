// Package timezone provides timezone utilities for the application.
//
// The agenda records appointment dates and creation timestamps in the
// operator's local timezone, configured via the APP_TIMEZONE environment
// variable (standard IANA names such as "America/Mexico_City" or "UTC").
// The location is loaded once when the package is imported.
//
//	now := timezone.Now()                   // current time in app timezone
//	t, err := timezone.Parse("2006-01-02", "2025-06-01")
//	s := timezone.Format(time.Now(), "2006-01-02 15:04")
package timezone
