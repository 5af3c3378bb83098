// Package entity implements the in-memory record registry: validated
// creation, point lookup, substring search by name, and export of the full
// id → record mapping as a document.
//
// A Registry is not safe for concurrent use. Hosts that share one across
// goroutines must guard it with their own mutex.
package entity
