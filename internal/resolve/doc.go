// Package resolve derives canonical storage keys from raw user prefixes
// under an addressing mode.
package resolve
