package auth

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

const MinSecretLen = 32

// Key is a named HMAC secret. ID travels in the token's kid header.
type Key struct {
	ID     string
	Secret []byte
}

func (k Key) validate() error {
	if k.ID == "" {
		return errors.New("signing key id is empty")
	}
	if len(k.Secret) < MinSecretLen {
		return fmt.Errorf("signing key %q: secret shorter than %d bytes", k.ID, MinSecretLen)
	}
	return nil
}

type retiredKey struct {
	secret    []byte
	retiredAt time.Time
}

// Keyring holds the active signing key plus retired keys that still verify
// until retiredAt+grace.
type Keyring struct {
	mu      sync.RWMutex
	active  Key
	retired map[string]retiredKey
	grace   time.Duration
}

func NewKeyring(active Key, grace time.Duration) (*Keyring, error) {
	if err := active.validate(); err != nil {
		return nil, err
	}
	if grace < 0 {
		grace = 0
	}
	return &Keyring{active: active, retired: map[string]retiredKey{}, grace: grace}, nil
}

func (k *Keyring) Active() Key {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.active
}

// Retire registers a key that is no longer used for signing, as of at.
func (k *Keyring) Retire(key Key, at time.Time) error {
	if err := key.validate(); err != nil {
		return err
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	if key.ID == k.active.ID {
		return fmt.Errorf("signing key %q is active", key.ID)
	}
	k.retired[key.ID] = retiredKey{secret: key.Secret, retiredAt: at}
	return nil
}

// Rotate makes next the active key and retires the previous one as of at.
func (k *Keyring) Rotate(next Key, at time.Time) error {
	if err := next.validate(); err != nil {
		return err
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	if next.ID == k.active.ID {
		return fmt.Errorf("signing key %q is already active", next.ID)
	}
	k.retired[k.active.ID] = retiredKey{secret: k.active.Secret, retiredAt: at}
	delete(k.retired, next.ID)
	k.active = next
	return nil
}

// Lookup returns the secret for kid if it may verify tokens at the given time.
func (k *Keyring) Lookup(kid string, at time.Time) ([]byte, bool) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	if kid == k.active.ID {
		return k.active.Secret, true
	}
	r, ok := k.retired[kid]
	if !ok || !at.Before(r.retiredAt.Add(k.grace)) {
		return nil, false
	}
	return r.secret, true
}
