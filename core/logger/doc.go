// Package logger builds the zap logger every command and package shares.
//
// Level picks the preset: debug gets zap's development config, anything else
// gets production with that minimum level. Format picks the console or json
// encoder.
//
// Library code takes a *zap.Logger and never builds its own. Inside inspector
// handlers WithRayID tags entries with the request's ray id:
//
//	l := logger.WithRayID(log, c)
//	l.Error("Readback failed", zap.Error(err))
package logger
