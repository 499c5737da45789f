package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Principal is an authenticated identity. The password is only ever held as a bcrypt hash.
type Principal struct {
	Username     string
	PasswordHash []byte
	Roles        []string
}

// HasRole reports whether the principal was granted role.
func (p Principal) HasRole(role string) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// NewPrincipal hashes password with bcrypt and returns the resulting principal.
func NewPrincipal(username, password string, roles ...string) (Principal, error) {
	if username == "" {
		return Principal{}, errors.New("principal username is required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Principal{}, fmt.Errorf("hashing password for %q: %w", username, err)
	}
	return Principal{
		Username:     username,
		PasswordHash: hash,
		Roles:        append([]string(nil), roles...),
	}, nil
}

// CredentialProvider verifies a username/password pair.
type CredentialProvider interface {
	Authenticate(username, password string) (Principal, bool)
}

// InMemoryCredentialProvider holds a fixed set of principals built at startup.
// It is never mutated after construction, so it is safe for concurrent use.
type InMemoryCredentialProvider struct {
	principals map[string]Principal
}

// NewInMemoryCredentialProvider indexes principals by username. Duplicate usernames are rejected.
func NewInMemoryCredentialProvider(principals ...Principal) (*InMemoryCredentialProvider, error) {
	index := make(map[string]Principal, len(principals))
	for _, p := range principals {
		if _, dup := index[p.Username]; dup {
			return nil, fmt.Errorf("duplicate principal %q", p.Username)
		}
		index[p.Username] = p
	}
	return &InMemoryCredentialProvider{principals: index}, nil
}

func (c *InMemoryCredentialProvider) Authenticate(username, password string) (Principal, bool) {
	p, ok := c.principals[username]
	if !ok {
		return Principal{}, false
	}
	if err := bcrypt.CompareHashAndPassword(p.PasswordHash, []byte(password)); err != nil {
		return Principal{}, false
	}
	return p, true
}
