package resolve

import (
	"fmt"

	"usermap/internal/domain"
)

// Key derives the canonical storage key for prefix under mode.
//
// In accounts mode the directory is consulted first; users without a
// registered account fall back to their ident@host. Lookup failures other
// than "not registered" propagate unchanged. The other modes never touch
// the directory.
func Key(prefix string, mode domain.Mode, dir domain.AccountLookup) (string, error) {
	nick, identHost, err := domain.SplitPrefix(prefix)
	if err != nil {
		return "", err
	}

	switch mode {
	case domain.ModeAccounts:
		if dir == nil {
			// No directory wired; treat every user as unregistered.
			return identHost, nil
		}
		account, ok, err := dir.Lookup(prefix)
		if err != nil {
			return "", err
		}
		if !ok {
			return identHost, nil
		}
		return account, nil
	case domain.ModeIdentHost:
		return identHost, nil
	case domain.ModeNicks:
		return nick, nil
	}
	return "", fmt.Errorf("resolve key for %q: %w", prefix, domain.ErrUnknownMode)
}
