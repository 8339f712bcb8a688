// Package keys provides the cryptographic sealing used on pairing payloads:
// anonymous public-key sealing for exchange messages and secret-key sealing
// for connect channels. Key material generation lives here too so callers
// never touch crypto/rand directly.
package keys

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/google/uuid"
	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/nacl/box"
	"golang.org/x/crypto/nacl/secretbox"
)

const (
	// KeySize is the size of public, secret, and symmetric keys in bytes.
	KeySize = 32

	// nonceSize is the secretbox nonce length prepended to sealed payloads.
	nonceSize = 24
)

// NewID returns a fresh random identifier for key IDs, device IDs, and
// user IDs.
func NewID() string {
	return uuid.NewString()
}

// NewKeyPair generates an asymmetric key pair for exchange sealing.
func NewKeyPair() (publicKey, secretKey []byte, err error) {
	pub, priv, err := box.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("generating key pair: %w", err)
	}

	return pub[:], priv[:], nil
}

// NewSecret generates a 32-byte symmetric key for connect channels and
// account primary keys.
func NewSecret() ([]byte, error) {
	secret := make([]byte, KeySize)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("generating secret: %w", err)
	}

	return secret, nil
}

// credentialInfo is the HKDF info string separating login credentials from
// any other material derived from a primary key.
const credentialInfo = "synclink login credential"

// DeriveCredential derives the relay login credential from an account's
// primary key, salted with the user ID. The primary key itself never
// reaches the relay.
func DeriveCredential(primaryKey []byte, userID string) ([]byte, error) {
	reader := hkdf.New(sha256.New, primaryKey, []byte(userID), []byte(credentialInfo))

	credential := make([]byte, KeySize)
	if _, err := io.ReadFull(reader, credential); err != nil {
		return nil, fmt.Errorf("deriving credential: %w", err)
	}

	return credential, nil
}

// ZeroKey overwrites key material in place. Call it once a secret has been
// handed off, to limit how long raw key bytes stay in memory.
func ZeroKey(key []byte) {
	for i := range key {
		key[i] = 0
	}
}

// SealAnonymous encrypts plaintext to the peer's public key with an
// ephemeral sender key. Only the holder of the matching secret key can open
// it, and the sender cannot.
func SealAnonymous(plaintext, peerPublicKey []byte) ([]byte, error) {
	pub, err := toKey(peerPublicKey)
	if err != nil {
		return nil, err
	}

	sealed, err := box.SealAnonymous(nil, plaintext, pub, rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("sealing payload: %w", err)
	}

	return sealed, nil
}

// OpenAnonymous decrypts a payload sealed to this key pair.
func OpenAnonymous(sealed, publicKey, secretKey []byte) ([]byte, error) {
	pub, err := toKey(publicKey)
	if err != nil {
		return nil, err
	}

	priv, err := toKey(secretKey)
	if err != nil {
		return nil, err
	}

	plaintext, ok := box.OpenAnonymous(nil, sealed, pub, priv)
	if !ok {
		return nil, fmt.Errorf("opening sealed payload: decryption failed")
	}

	return plaintext, nil
}

// SealWithSecret encrypts plaintext with a shared symmetric key. The random
// nonce is prepended to the ciphertext.
func SealWithSecret(plaintext, secret []byte) ([]byte, error) {
	key, err := toKey(secret)
	if err != nil {
		return nil, err
	}

	var nonce [nonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return nil, fmt.Errorf("generating nonce: %w", err)
	}

	return secretbox.Seal(nonce[:], plaintext, &nonce, key), nil
}

// OpenWithSecret decrypts a payload produced by SealWithSecret.
func OpenWithSecret(sealed, secret []byte) ([]byte, error) {
	key, err := toKey(secret)
	if err != nil {
		return nil, err
	}

	if len(sealed) < nonceSize {
		return nil, fmt.Errorf("sealed payload too short: %d bytes", len(sealed))
	}

	var nonce [nonceSize]byte
	copy(nonce[:], sealed[:nonceSize])

	plaintext, ok := secretbox.Open(nil, sealed[nonceSize:], &nonce, key)
	if !ok {
		return nil, fmt.Errorf("opening sealed payload: decryption failed")
	}

	return plaintext, nil
}

func toKey(b []byte) (*[KeySize]byte, error) {
	if len(b) != KeySize {
		return nil, fmt.Errorf("invalid key length %d, want %d", len(b), KeySize)
	}

	var key [KeySize]byte
	copy(key[:], b)

	return &key, nil
}
