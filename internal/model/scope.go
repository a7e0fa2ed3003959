package model

// Scope identifies the authenticated caller of a request.
type Scope struct {
	UserID string
}

type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
