package store

import (
	"os"
	"strings"

	"usermap/internal/domain"
	"usermap/internal/observability"
	"usermap/internal/resolve"
)

// Options configure a DB at open time.
type Options struct {
	// Mode selects the addressing policy. The zero value is ModeAccounts.
	Mode domain.Mode
	// CaseSensitive disables case folding of canonical keys.
	CaseSensitive bool
	// Lookup is consulted in accounts mode. A nil Lookup makes every user
	// fall back to ident@host addressing.
	Lookup domain.AccountLookup
	// Codec controls the on-disk byte format. Defaults to JSONCodec.
	Codec Codec
	// Logger receives diagnostics. Defaults to a no-op logger.
	Logger *observability.Logger
}

// DB maps canonical user keys to account identifiers, held in memory and
// persisted to a single file on Flush.
type DB struct {
	db            map[string]domain.AccountID
	path          string
	mode          domain.Mode
	caseSensitive bool
	lookup        domain.AccountLookup
	codec         Codec
	log           *observability.Logger
}

// Open loads the mapping stored at path, creating an empty one in memory
// when none can be read. Open never fails: an absent, corrupt or unreadable
// file is logged at debug level and recovered with an empty mapping.
func Open(path string, opts Options) *DB {
	d := &DB{
		db:            make(map[string]domain.AccountID),
		path:          path,
		mode:          opts.Mode,
		caseSensitive: opts.CaseSensitive,
		lookup:        opts.Lookup,
		codec:         opts.Codec,
		log:           opts.Logger,
	}
	if d.codec == nil {
		d.codec = JSONCodec{}
	}
	if d.log == nil {
		d.log = observability.Nop()
	}

	if err := d.load(); err != nil {
		d.log.Debug("unable to load mapping, starting with an empty one",
			"path", path, "err", err)
		return d
	}
	if !d.caseSensitive {
		d.normalize()
	}
	return d
}

func (d *DB) load() error {
	b, err := os.ReadFile(d.path)
	if err != nil {
		return err
	}
	m, err := d.codec.Decode(b)
	if err != nil {
		return err
	}
	d.db = m
	return nil
}

// normalize folds mixed-case keys loaded from disk to lowercase. Renames
// are collected first and applied after, so the map is never mutated while
// being iterated. When a mixed-case key and its lowercase form both exist,
// the last rename applied wins; which one that is depends on map iteration
// order and is accepted nondeterminism.
func (d *DB) normalize() {
	type rename struct{ from, to string }
	var renames []rename
	for k := range d.db {
		if lower := strings.ToLower(k); lower != k {
			renames = append(renames, rename{from: k, to: lower})
		}
	}
	for _, r := range renames {
		d.log.Debug("case-shifting key", "from", r.from, "to", r.to)
		d.db[r.to] = d.db[r.from]
		delete(d.db, r.from)
	}
}

// key resolves prefix to its canonical, case-folded storage key.
func (d *DB) key(prefix string) (string, error) {
	k, err := resolve.Key(prefix, d.mode, d.lookup)
	if err != nil {
		return "", err
	}
	if !d.caseSensitive {
		k = strings.ToLower(k)
	}
	return k, nil
}

// Get returns the identifier stored for prefix. A missing entry is reported
// through ok, never as an error.
func (d *DB) Get(prefix string) (id domain.AccountID, ok bool, err error) {
	k, err := d.key(prefix)
	if err != nil {
		return "", false, err
	}
	d.log.Debug("looking up prefix", "prefix", prefix, "key", k)
	id, ok = d.db[k]
	return id, ok, nil
}

// Set associates prefix with id, unconditionally overwriting any previous
// entry. The change is in-memory only until Flush.
func (d *DB) Set(prefix string, id domain.AccountID) error {
	k, err := d.key(prefix)
	if err != nil {
		return err
	}
	d.db[k] = id
	return nil
}

// Flush writes the mapping to disk via a temp file and atomic rename.
// Failures are logged at error level and swallowed; the in-memory mapping
// stays usable either way.
func (d *DB) Flush() {
	b, err := d.codec.Encode(d.db)
	if err != nil {
		d.log.Error("unable to encode mapping", "path", d.path, "err", err)
		return
	}
	if err := atomicWrite(d.path, b, 0o600); err != nil {
		d.log.Error("unable to write mapping", "path", d.path, "err", err)
	}
}

// Len reports the number of stored entries.
func (d *DB) Len() int { return len(d.db) }
