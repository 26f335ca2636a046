// Package store provides ports.QuoteStore implementations for the user's local
// quote state: bookmarks, liked quotes and viewing history.
//
// MemoryStore keeps state for the life of the process. FileStore persists it to
// a TOML document so the CLI remembers bookmarks between runs.
package store
