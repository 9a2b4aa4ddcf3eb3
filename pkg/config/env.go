package config

import "os"

// LookupFunc reports the value stored under key and whether the key is
// present at all. os.LookupEnv satisfies this signature.
type LookupFunc func(key string) (string, bool)

// Env reads configuration values from a key/value store through a LookupFunc.
// The zero value is not usable; construct instances with NewEnv.
type Env struct {
	lookup LookupFunc
}

// NewEnv returns an Env bound to the given lookup function. Passing a lookup
// over a plain map gives tests a deterministic store without mutating the
// process environment.
func NewEnv(lookup LookupFunc) *Env {
	return &Env{lookup: lookup}
}

// Get returns the value stored under key if, and only if, that value is both
// present and non-empty. In every other case (key absent, or set to the empty
// string) it returns the fallback, which defaults to the empty string when
// omitted.
//
// Get is a pure read of the store at call time. It never fails and has no
// side effects, so concurrent callers need no coordination.
func (e *Env) Get(key string, fallback ...string) string {
	def := ""
	if len(fallback) > 0 {
		def = fallback[0]
	}
	if v, ok := e.lookup(key); ok && v != "" {
		return v
	}
	return def
}

var processEnv = NewEnv(os.LookupEnv)

// Process returns the Env bound to the process environment.
func Process() *Env {
	return processEnv
}

// Get reads key from the process environment with default substitution.
// See Env.Get for the exact semantics.
func Get(key string, fallback ...string) string {
	return processEnv.Get(key, fallback...)
}
