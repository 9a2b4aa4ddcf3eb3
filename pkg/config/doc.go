// Package config provides environment-based configuration access for the
// Shift Book services.
//
// Two access styles are offered:
//
//   - Get reads a single variable with default substitution: the stored value
//     is returned only when it is present and non-empty, otherwise the caller's
//     fallback (empty string when omitted). Absent keys are normal inputs, not
//     failures, so Get never returns an error.
//   - Load parses the environment into an annotated struct using
//     `github.com/caarlos0/env/v11`, after loading an optional `.env` file via
//     `github.com/joho/godotenv`. Each struct type is parsed once per process
//     and served from a cache afterwards.
//
// Get is a pure read of the store at call time; repeated calls reflect any
// intervening changes. Load is deliberately cached; use ForceReload or
// ResetCache in tests that mutate the environment between loads.
//
// Direct dependence on the process environment can be avoided by constructing
// an Env over any lookup function:
//
//	env := config.NewEnv(func(key string) (string, bool) {
//	    v, ok := fixtures[key]
//	    return v, ok
//	})
//	name := env.Get("EMAIL_FROM_NAME", "Shift Book System")
//
// Package-level Get is equivalent to config.Process().Get.
package config
