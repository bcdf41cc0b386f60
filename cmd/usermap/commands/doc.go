// Package commands implements the usermap CLI: inspection and maintenance
// of the persistent user→identifier mapping and its account directory.
package commands
