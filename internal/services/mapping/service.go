package mapping

import (
	uuid "github.com/hashicorp/go-uuid"

	"usermap/internal/domain"
	"usermap/internal/store"
)

// Service wraps a store.DB with flush-on-write semantics and identifier
// assignment.
type Service struct {
	db *store.DB
}

// New returns a mapping service backed by db.
func New(db *store.DB) *Service { return &Service{db: db} }

// Get returns the identifier stored for prefix.
func (s *Service) Get(prefix string) (domain.AccountID, bool, error) {
	return s.db.Get(prefix)
}

// Set stores id for prefix and flushes the mapping to disk.
func (s *Service) Set(prefix string, id domain.AccountID) error {
	if err := s.db.Set(prefix, id); err != nil {
		return err
	}
	s.db.Flush()
	return nil
}

// Assign returns the identifier for prefix, minting and persisting a fresh
// one when none exists yet.
func (s *Service) Assign(prefix string) (domain.AccountID, error) {
	id, ok, err := s.db.Get(prefix)
	if err != nil {
		return "", err
	}
	if ok {
		return id, nil
	}

	raw, err := uuid.GenerateUUID()
	if err != nil {
		return "", err
	}
	id = domain.AccountID(raw)
	if err := s.db.Set(prefix, id); err != nil {
		return "", err
	}
	s.db.Flush()
	return id, nil
}
