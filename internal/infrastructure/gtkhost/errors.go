// Package gtkhost implements the shell's host ports on GTK4 and WebKitGTK.
// Everything in this package must run on the GTK main thread.
package gtkhost

import "errors"

var (
	// ErrWindowCreationFailed is returned when the application window cannot be created.
	ErrWindowCreationFailed = errors.New("failed to create window")
	// ErrViewCreationFailed is returned when a web view cannot be created.
	ErrViewCreationFailed = errors.New("failed to create web view")
)
