// Package appconf holds application configuration and the environment the
// process runs in. Configuration can be seeded from an optional YAML file and
// overridden by command-line flags; it is validated with struct tags before
// the server starts.
package appconf

// Environment names the operating environment for the application.
type Environment int

const (
	Development Environment = iota
	Test
	Production
)

// EnvFlagToEnvironment maps an environment flag value to an Environment,
// defaulting to Development for unknown values.
func EnvFlagToEnvironment(env string) Environment {
	switch env {
	case "test":
		return Test
	case "production":
		return Production
	default:
		return Development
	}
}

func (e Environment) String() string {
	switch e {
	case Test:
		return "test"
	case Production:
		return "production"
	default:
		return "development"
	}
}
