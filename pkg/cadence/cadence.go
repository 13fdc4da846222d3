// Package cadence exposes build metadata for the Cadence application.
package cadence

// Version is the application version, bumped at release time.
const Version = "0.1.0"
