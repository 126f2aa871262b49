// Package environment defines the application runtime environments
// and predicates used to toggle environment-dependent behavior such
// as cookie security flags and error verbosity.
package environment

// Environment represents application environment.
type Environment string

const (
	// Development for development environment.
	Development Environment = "development"
	// Staging for staging environment.
	Staging Environment = "staging"
	// Production for production environment.
	Production Environment = "production"
)

// Parse normalizes an environment name, accepting common short
// forms. Unknown values fall back to Development.
func Parse(s string) Environment {
	switch s {
	case string(Production), "prod":
		return Production
	case string(Staging), "stage":
		return Staging
	default:
		return Development
	}
}

// IsProduction reports whether env names the production environment.
func IsProduction(env Environment) bool {
	return env == Production
}

// IsDevelopment reports whether env names the development environment.
func IsDevelopment(env Environment) bool {
	return env == Development
}
