//go:build !nonmax_debug

package nonmax

const debugChecks = false
