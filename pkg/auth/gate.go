package auth

import (
	"errors"
	"strconv"
	"time"

	"adminpanel/pkg/database"
	"adminpanel/pkg/log"
	"adminpanel/pkg/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// DefaultTokenTTL is how long an issued credential stays valid.
const DefaultTokenTTL = 24 * time.Hour

const bcryptCost = 10

// UserLookup is the slice of the database the gate needs.
type UserLookup interface {
	GetUserByUsername(username string) (*models.User, error)
	GetUserByID(userID int64) (*models.User, error)
}

// Claims is the JWT payload carried by issued credentials.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Gate verifies credentials and issues bearer tokens for the admin API.
type Gate struct {
	users    UserLookup
	sessions SessionStore
	secret   []byte
	ttl      time.Duration
}

// NewGate creates an auth gate. A zero ttl falls back to DefaultTokenTTL.
func NewGate(users UserLookup, sessions SessionStore, secret []byte, ttl time.Duration) *Gate {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Gate{users: users, sessions: sessions, secret: secret, ttl: ttl}
}

// Login checks the password against the stored bcrypt hash and issues a
// signed token. Unknown users and wrong passwords both come back as
// ErrInvalidCredentials.
func (g *Gate) Login(username, password string) (string, *models.User, error) {
	userRecord, err := g.users.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, database.ErrUserNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRecord.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	now := time.Now()
	expiresAt := now.Add(g.ttl)
	tokenID := uuid.NewString()

	claims := Claims{
		Username: userRecord.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userRecord.ID, 10),
			ID:        tokenID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.secret)
	if err != nil {
		return "", nil, err
	}

	g.sessions.Put(tokenID, userRecord.ID, expiresAt)

	log.Info().Str("username", userRecord.Username).Msg("User logged in")
	return token, userRecord, nil
}

// Verify validates the token signature, expiry and session, and resolves the
// principal.
func (g *Gate) Verify(token string) (*models.User, error) {
	claims, err := g.parse(token)
	if err != nil {
		return nil, err
	}

	if !g.sessions.Get(claims.ID) {
		return nil, ErrInvalidToken
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, ErrInvalidToken
	}

	userRecord, err := g.users.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, database.ErrUserNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	return userRecord, nil
}

// Logout revokes the token's session. Logout is idempotent: an invalid or
// already-revoked token is not an error.
func (g *Gate) Logout(token string) {
	claims, err := g.parse(token)
	if err != nil {
		return
	}
	g.sessions.Revoke(claims.ID)
	log.Info().Str("username", claims.Username).Msg("User logged out")
}

func (g *Gate) parse(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return g.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// HashPassword hashes a plaintext password for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
