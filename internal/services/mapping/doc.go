// Package mapping exposes the high-level prefix→identifier operations used
// by the CLI and by host applications that want flush-on-write semantics.
package mapping
