package domain

// AccountLookup resolves a raw user prefix to a registered account name.
// ok reports whether the prefix belongs to a known account; any other
// failure is carried in err and must be propagated by callers.
type AccountLookup interface {
	Lookup(prefix string) (account string, ok bool, err error)
}
