package domain

import (
	"errors"
	"fmt"
	"strings"
)

// AccountID is an opaque identifier supplied by the host application, for
// example a third-party account name. The store imposes no structure on it.
type AccountID string

// ErrInvalidPrefix is returned when a raw user prefix cannot be split into
// a nickname and an ident@host part.
var ErrInvalidPrefix = errors.New("prefix is missing the nick separator")

// SplitPrefix splits a raw "nick!ident@host" prefix at the first '!' into
// its nickname and ident@host components.
func SplitPrefix(prefix string) (nick, identHost string, err error) {
	nick, identHost, ok := strings.Cut(prefix, "!")
	if !ok {
		return "", "", fmt.Errorf("split prefix %q: %w", prefix, ErrInvalidPrefix)
	}
	return nick, identHost, nil
}
