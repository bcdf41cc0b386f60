// Package store owns the persistent mapping from canonical user keys to
// account identifiers.
//
// A DB holds the mapping in memory, loads it from a single JSON file when
// opened, and writes it back only on an explicit Flush via a temp file and
// atomic rename. Load and flush failures are recovered internally: the
// store favours host-process liveness over surfacing storage faults.
//
// A DB assumes a single in-process owner for its storage path. It carries
// no internal locking; callers in concurrent hosts must serialize access
// themselves.
package store
