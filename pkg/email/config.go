package email

import "github.com/shiftbook/gokit/pkg/config"

// Config holds the outbound email settings for the Shift Book System.
// DestinationName identifies the outbound mail destination; it also serves as
// the default message tag and as the simulation sender's output directory.
// SimulationMode switches delivery from Postmark to the local simulation
// sender.
type Config struct {
	DestinationName string
	FromAddress     string
	FromName        string
	SimulationMode  bool
}

// LoadConfig assembles a fresh Config from the process environment. Every
// string field falls back to its default when the variable is unset or empty.
// SimulationMode is true only when EMAIL_SIMULATION_MODE is set to exactly
// "true"; any other value, including "false", "yes" or an empty string,
// yields false.
//
// LoadConfig performs no I/O beyond the environment reads and cannot fail.
// Each call returns a newly built value, so concurrent callers share no
// mutable state.
func LoadConfig() Config {
	return LoadConfigFrom(config.Process())
}

// LoadConfigFrom reads the same keys as LoadConfig from an explicit Env,
// letting tests supply a deterministic store.
func LoadConfigFrom(env *config.Env) Config {
	return Config{
		DestinationName: env.Get("EMAIL_DESTINATION_NAME", "shiftbook-email"),
		FromAddress:     env.Get("EMAIL_FROM_ADDRESS", "noreply@company.com"),
		FromName:        env.Get("EMAIL_FROM_NAME", "Shift Book System"),
		SimulationMode:  env.Get("EMAIL_SIMULATION_MODE") == "true",
	}
}
