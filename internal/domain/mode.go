package domain

import (
	"errors"
	"fmt"
)

// Mode selects which part of a user's identity forms the canonical storage
// key. It is fixed when a store is opened; switching modes over an existing
// file leaves old keys intact but addressed inconsistently, and migration
// between modes is not supported.
type Mode int

const (
	// ModeAccounts keys users by their registered account name, falling
	// back to ident@host when they are not registered.
	ModeAccounts Mode = iota
	// ModeIdentHost keys users by their ident@host.
	ModeIdentHost
	// ModeNicks keys users by nickname.
	ModeNicks
)

// ErrUnknownMode reports a Mode value outside the declared set. It indicates
// a configuration or programming error upstream.
var ErrUnknownMode = errors.New("unknown addressing mode")

// ParseMode validates a configuration string and returns the matching Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "accounts":
		return ModeAccounts, nil
	case "identhost":
		return ModeIdentHost, nil
	case "nicks":
		return ModeNicks, nil
	}
	return 0, fmt.Errorf("parse mode %q: %w", s, ErrUnknownMode)
}

func (m Mode) String() string {
	switch m {
	case ModeAccounts:
		return "accounts"
	case ModeIdentHost:
		return "identhost"
	case ModeNicks:
		return "nicks"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}
