// Package server holds the inspector HTTP server configuration.
//
// The serve command owns the Fiber app itself; this package only defines the
// settings (port, API key, headless screen size) and their validation.
package server
