// Package directory provides a file-backed account registry.
//
// It stands in for a host application's user directory: hostmasks (a full
// "nick!ident@host" prefix or just the ident@host part) are registered
// under account names, and lookups resolve a live prefix to the account it
// belongs to.
package directory
