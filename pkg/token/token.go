// Package token issues and verifies the signed bearer credentials used for
// session authentication. Tokens are stateless: all identity data lives in
// the signed claims and there is no server-side revocation.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/fieldline/crm-api/internal/core/domain"
)

const defaultTTL = 24 * time.Hour

// Claims is the identity payload carried by a verified token.
type Claims struct {
	UserID int
	Role   domain.Role
}

// Manager signs and verifies HS256 tokens with a process-wide secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// New creates a Manager. A non-positive ttl falls back to 24 hours.
func New(secret string, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed token embedding the user id and role, valid for
// the manager's TTL from now.
func (m *Manager) Issue(userID int, role domain.Role) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    string(role),
		"iat":     now.Unix(),
		"exp":     now.Add(m.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Verify checks signature and expiry and returns the embedded claims.
// Every failure mode (bad signature, wrong algorithm, malformed payload,
// expired token) surfaces as the same unauthorized error.
func (m *Manager) Verify(tokenString string) (Claims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !tkn.Valid {
		return Claims{}, domain.Unauthorized("Invalid or expired token")
	}

	// JSON numbers decode as float64 in MapClaims.
	id, ok := claims["user_id"].(float64)
	if !ok {
		return Claims{}, domain.Unauthorized("Invalid or expired token")
	}
	role, ok := claims["role"].(string)
	if !ok {
		return Claims{}, domain.Unauthorized("Invalid or expired token")
	}

	return Claims{UserID: int(id), Role: domain.Role(role)}, nil
}
