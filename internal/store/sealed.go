package store

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"usermap/internal/domain"
)

// The current supported version of the sealed blob format stored on disk.
const sealedFormatVersion = 1

// Returned when the passphrase is incorrect or the ciphertext has been
// modified / corrupted.
var errSealOpen = errors.New("wrong passphrase or corrupted mapping")

// envelope is the on-disk JSON structure holding the ciphertext and KDF
// parameters.
type envelope struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Nonce  []byte `json:"nonce"`
	Cipher []byte `json:"cipher"`
}

// SealedCodec encrypts the serialized mapping with a key derived from a
// passphrase, for hosts that consider hostmasks sensitive at rest.
type SealedCodec struct {
	Passphrase string
}

func (c SealedCodec) Encode(m map[string]domain.AccountID) ([]byte, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}

	var salt [16]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return nil, err
	}
	N, r, p := scryptParamsDefault()
	key, err := scrypt.Key([]byte(c.Passphrase), salt[:], N, r, p, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	ct := aead.Seal(nil, nonce, raw, salt[:])

	return json.Marshal(envelope{
		V:      sealedFormatVersion,
		Salt:   salt[:],
		N:      N,
		R:      r,
		P:      p,
		Nonce:  nonce,
		Cipher: ct,
	})
}

func (c SealedCodec) Decode(b []byte) (map[string]domain.AccountID, error) {
	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, err
	}
	if env.V > sealedFormatVersion {
		return nil, fmt.Errorf("unsupported sealed mapping version %d", env.V)
	}

	key, err := scrypt.Key([]byte(c.Passphrase), env.Salt, env.N, env.R, env.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	raw, err := aead.Open(nil, env.Nonce, env.Cipher, env.Salt)
	if err != nil {
		return nil, errSealOpen
	}

	m := make(map[string]domain.AccountID)
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// Tunables for scrypt key derivation.
func scryptParamsDefault() (N, r, p int) { return 1 << 15, 8, 1 }
