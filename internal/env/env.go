// Package env provides environment variable access behind an interface so
// callers can be exercised without touching the real process environment.
package env

import "os"

// Reader looks up environment variables.
type Reader interface {
	LookupEnv(key string) (string, bool)
}

// OSReader implements Reader using the process environment.
type OSReader struct{}

// LookupEnv returns the value of the named variable and whether it is set.
func (OSReader) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapReader implements Reader over a fixed map. A nil map has no variables.
type MapReader map[string]string

// LookupEnv returns the mapped value and whether the key is present.
func (m MapReader) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Resolve returns the value of key when it is set, even when set to the
// empty string, and fallback otherwise.
func Resolve(r Reader, key, fallback string) string {
	if r == nil {
		return fallback
	}
	if v, ok := r.LookupEnv(key); ok {
		return v
	}
	return fallback
}

// Lookup returns the value of key only when it is set and non-empty.
// Used for optional overrides where an empty value means "not configured".
func Lookup(r Reader, key string) (string, bool) {
	if r == nil {
		return "", false
	}
	v, ok := r.LookupEnv(key)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
