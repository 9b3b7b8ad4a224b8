// Package logging provides the structured logger shared by the multiplier
// decorator, the orchestration layer and the application entry point. It is a
// thin facade over zerolog with typed field helpers.
package logging
