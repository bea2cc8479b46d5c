package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenMissing means the request carried no bearer token at all.
	ErrTokenMissing = errors.New("auth: token missing")
	// ErrTokenInvalid covers malformed tokens and bad signatures.
	ErrTokenInvalid = errors.New("auth: token invalid")
	// ErrTokenExpired means the token was well-formed but past its expiry.
	ErrTokenExpired = errors.New("auth: token expired")
)

// Identity is the decoded payload embedded in a token: the user id plus
// denormalized profile fields so handlers do not need a user lookup.
type Identity struct {
	UserID    uint   `json:"user_id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type claims struct {
	Identity
	jwt.RegisteredClaims
}

// Service issues and verifies signed bearer tokens. The signing secret,
// token lifetime and clock are fixed at construction; Issue and Verify
// read no ambient state, so concurrent use from handlers is safe.
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// New creates a token service signing with secret, valid for ttl.
// A non-positive ttl defaults to one hour.
func New(secret string, ttl time.Duration) *Service {
	return NewWithClock(secret, ttl, time.Now)
}

// NewWithClock is New with an explicit clock, for tests.
func NewWithClock(secret string, ttl time.Duration, now func() time.Time) *Service {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
		now:    now,
	}
}

// Issue signs id into a bearer token expiring at now+ttl.
func (s *Service) Issue(id Identity) (string, error) {
	now := s.now()
	c := &claims{
		Identity: id,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return token.SignedString(s.secret)
}

// Verify checks signature and expiry and returns the embedded identity.
// Failures are reported as ErrTokenExpired or ErrTokenInvalid.
func (s *Service) Verify(tokenStr string) (*Identity, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	c, ok := token.Claims.(*claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return &c.Identity, nil
}
