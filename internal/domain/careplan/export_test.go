package careplan

import "time"

// SetNow lets external tests pin the service clock.
func SetNow(s *Service, now func() time.Time) { s.now = now }
