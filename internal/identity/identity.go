// Package identity supplies the current user identity for cart keying.
// It does not authenticate anything: the token is issued and validated by
// the remote API, this only reads the user id out of it.
package identity

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tiembanh/cartstore/internal/port"
)

type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Source derives the identity from the stored access token. SetToken and
// ClearToken drive identity changes; callers re-Select the cart store
// afterwards.
type Source struct {
	secret []byte
	userID string
}

var _ port.IdentityProvider = (*Source)(nil)

func NewSource(secret []byte) *Source {
	return &Source{secret: secret}
}

func (s *Source) SetToken(tokenString string) error {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil || !token.Valid || claims.UserID == "" {
		s.userID = ""
		return fmt.Errorf("invalid token")
	}

	s.userID = claims.UserID
	return nil
}

func (s *Source) ClearToken() {
	s.userID = ""
}

func (s *Source) CurrentIdentity() string {
	return s.userID
}

// Static is a fixed identity, mostly for tests.
type Static string

var _ port.IdentityProvider = Static("")

func (s Static) CurrentIdentity() string {
	return string(s)
}
