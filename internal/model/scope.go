package model

// Environment identifies the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope carries request-scoped identity through usecases. Kept separate from
// inputs so handlers never smuggle identity inside payloads.
type Scope struct {
	UserID    string
	RequestID string
}
