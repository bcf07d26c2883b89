package security

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid session token")
	ErrExpiredToken = errors.New("session has expired")
)

// PrincipalKind tags the two disjoint identity tables sharing one session
// mechanism.
type PrincipalKind string

const (
	PrincipalKindAccount PrincipalKind = "account"
	PrincipalKindManager PrincipalKind = "manager"
)

// SessionClaims carries the composite principal id ("account:<id>" or
// "manager:<id>") in the subject.
type SessionClaims struct {
	jwt.RegisteredClaims
}

type SessionManager interface {
	Issue(kind PrincipalKind, id int32) (string, error)
	// Resolve returns the principal kind and numeric id for a token. A
	// malformed or expired token yields an error; callers treat any error
	// as "no principal".
	Resolve(token string) (PrincipalKind, int32, error)
}

type sessionManager struct {
	secret []byte
	ttl    time.Duration
}

func NewSessionManager(secret string, ttl time.Duration) SessionManager {
	return &sessionManager{secret: []byte(secret), ttl: ttl}
}

func (m *sessionManager) Issue(kind PrincipalKind, id int32) (string, error) {
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%s:%d", kind, id),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "clubhub",
			ID:        uuid.NewString(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *sessionManager) Resolve(tokenString string) (PrincipalKind, int32, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", 0, ErrExpiredToken
		}
		return "", 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return "", 0, ErrInvalidToken
	}
	return parseSubject(claims.Subject)
}

func parseSubject(subject string) (PrincipalKind, int32, error) {
	prefix, raw, found := strings.Cut(subject, ":")
	if !found {
		return "", 0, ErrInvalidToken
	}
	kind := PrincipalKind(prefix)
	if kind != PrincipalKindAccount && kind != PrincipalKindManager {
		return "", 0, ErrInvalidToken
	}
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return "", 0, ErrInvalidToken
	}
	return kind, int32(id), nil
}
