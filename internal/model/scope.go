package model

// Environment identifies the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope carries per-request identity through the usecase layer.
type Scope struct {
	SessionID string // Opaque session identifier from the UI layer
	Language  string // Optional user-declared language code
}
