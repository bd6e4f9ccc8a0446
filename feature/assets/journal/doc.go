// Package journal persists one row per attempted asset load through GORM.
//
// A Journal implements assets.Recorder, so it can be passed to the manager
// with assets.WithRecorder. It works with any dialect core/database connects
// to; tests run it against in-memory SQLite and sqlmock.
package journal
