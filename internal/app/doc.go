// Package app wires configuration, logging, the account directory, the
// persistent store and the mapping service into a ready dependency graph.
package app
