package service

import "time"

// Export for testing
var MatchesToken = matchesToken

// SetClock replaces the time source of services built by this package.
func SetClock(svc interface{}, now func() time.Time) {
	switch s := svc.(type) {
	case *domainService:
		s.now = now
	case *txtVerificationService:
		s.now = now
	case *domainJobService:
		s.now = now
	case *authService:
		s.now = now
	}
}

// SetJobTimeout bounds shared job runs of svc.
func SetJobTimeout(svc DomainJobService, d time.Duration) {
	svc.(*domainJobService).timeout = d
}
