package store

import (
	"encoding/json"

	"usermap/internal/domain"
)

// Codec turns the in-memory mapping into on-disk bytes and back.
type Codec interface {
	Encode(m map[string]domain.AccountID) ([]byte, error)
	Decode(b []byte) (map[string]domain.AccountID, error)
}

// JSONCodec stores the mapping as indented JSON. It is the default codec.
type JSONCodec struct{}

func (JSONCodec) Encode(m map[string]domain.AccountID) ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}

func (JSONCodec) Decode(b []byte) (map[string]domain.AccountID, error) {
	m := make(map[string]domain.AccountID)
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}
