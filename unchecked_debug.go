//go:build nonmax_debug

package nonmax

const debugChecks = true
