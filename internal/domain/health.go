package domain

// HealthStatus indicates doctor check outcomes.
type HealthStatus string

const (
	HealthOK    HealthStatus = "ok"
	HealthWarn  HealthStatus = "warn"
	HealthError HealthStatus = "error"
)

// HealthCheck captures a single diagnostic result.
type HealthCheck struct {
	Name    string
	Status  HealthStatus
	Details string
}

// HealthReport aggregates checks.
type HealthReport struct {
	Checks []HealthCheck
}

// FailedCount returns the number of checks with HealthError status.
func (r HealthReport) FailedCount() int {
	count := 0
	for _, check := range r.Checks {
		if check.Status == HealthError {
			count++
		}
	}
	return count
}
