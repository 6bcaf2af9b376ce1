// Package timezone provides timezone utilities for the application.
//
// The timezone is configured via the APP_TIMEZONE environment variable and is
// initialized when the package is imported. Only standard IANA timezone database
// names are supported ("UTC", "Asia/Riyadh", "Europe/London").
//
//	now := timezone.Now()                   // current time in app timezone
//	t, err := timezone.Parse("2006-01-02", "2025-01-01")
//	s := timezone.Format(time.Now(), time.RFC3339)
package timezone
