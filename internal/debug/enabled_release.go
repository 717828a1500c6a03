//go:build !vecdebug

package debug

const enabledDefault = false
