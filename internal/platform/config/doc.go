// Package config loads process-wide settings from the environment once at
// startup. Handlers receive the resulting struct; they never read env vars.
package config
