// Package timezone pins every timestamp the service produces to a single
// configured location, so check-in windows, audit entries, and cache
// expirations agree regardless of where the process runs.
//
//	now := timezone.Now()
//	local := timezone.ToAppTime(someTime)
//	s := timezone.Format(now, "2006-01-02 15:04:05")
//	t, err := timezone.Parse("2006-01-02", "2024-06-01")
//
// The location comes from the APP_TIMEZONE environment variable and must be
// an IANA name ("UTC", "Asia/Manila", "Europe/London"). It is resolved once
// when the package is imported; GetLocation exposes it for callers that need
// the *time.Location directly.
package timezone
