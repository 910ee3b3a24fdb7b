// Package health coordinates service health checks.
package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates the service can reach its store.
	Healthy Status = "healthy"
	// Unhealthy indicates the store is unreachable.
	Unhealthy Status = "unhealthy"
)

// Report is the health check outcome.
type Report struct {
	Status   Status
	Database string // "connected" or the failure cause
}

// Service runs the database health check.
type Service struct {
	db DBPinger
}

// New creates a health service.
func New(db DBPinger) *Service {
	return &Service{db: db}
}

// Check pings the store and reports the result.
func (s *Service) Check(ctx context.Context) Report {
	if err := s.db.Ping(ctx); err != nil {
		return Report{Status: Unhealthy, Database: err.Error()}
	}
	return Report{Status: Healthy, Database: "connected"}
}
