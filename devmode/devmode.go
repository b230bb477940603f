// Package devmode provides shared constants for development mode across the
// API client, the mock backend and the CLIs.
package devmode

// Environment is the runtime environment name that enables the mock fallback.
// Any other value (including empty) is treated as non-development.
const Environment = "development"

// MockTokenPrefix prefixes every token minted by the mock backend.
// Tokens with this prefix are never accepted by a real backend.
const MockTokenPrefix = "mock-jwt-token-"

// MockAdminEmail is the email of the fixed admin user served by mock responses.
const MockAdminEmail = "admin@chimbohelpinghands.org"

// Enabled reports whether env names the development runtime.
func Enabled(env string) bool { return env == Environment }
