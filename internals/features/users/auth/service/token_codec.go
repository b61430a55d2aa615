package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const (
	AccessTTLDefault  = 24 * time.Hour
	RefreshTTLDefault = 30 * 24 * time.Hour
)

var ErrInvalidToken = errors.New("token inválido")

// TokenClaims is what a decoded token carries.
type TokenClaims struct {
	UserID    uuid.UUID
	Role      string
	ExpiresAt time.Time
}

// TokenCodec signs and verifies HS256 tokens with one secret.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
	kind   string // "access" | "refresh"
	now    func() time.Time
}

func NewAccessCodec(secret string, ttl time.Duration) *TokenCodec {
	if ttl <= 0 {
		ttl = AccessTTLDefault
	}
	return &TokenCodec{secret: []byte(secret), ttl: ttl, kind: "access", now: nowUTC}
}

func NewRefreshCodec(secret string, ttl time.Duration) *TokenCodec {
	if ttl <= 0 {
		ttl = RefreshTTLDefault
	}
	return &TokenCodec{secret: []byte(secret), ttl: ttl, kind: "refresh", now: nowUTC}
}

func nowUTC() time.Time { return time.Now().UTC() }

// Issue signs a token for userID. role is only embedded in access tokens.
func (t *TokenCodec) Issue(userID uuid.UUID, role string) (string, time.Time, error) {
	if len(t.secret) == 0 {
		return "", time.Time{}, fmt.Errorf("segredo JWT (%s) não definido", t.kind)
	}
	now := t.now()
	exp := now.Add(t.ttl)
	claims := jwt.MapClaims{
		"id":  userID.String(),
		"typ": t.kind,
		"jti": uuid.NewString(),
		"iat": now.Unix(),
		"exp": exp.Unix(),
	}
	if t.kind == "access" && role != "" {
		claims["role"] = role
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// Decode verifies signature, expiry and token kind.
func (t *TokenCodec) Decode(raw string) (*TokenClaims, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || len(t.secret) == 0 {
		return nil, ErrInvalidToken
	}
	parser := jwt.Parser{ValidMethods: []string{jwt.SigningMethodHS256.Alg()}}
	tok, err := parser.Parse(raw, func(*jwt.Token) (any, error) { return t.secret, nil })
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	if typ, _ := claims["typ"].(string); typ != t.kind {
		return nil, ErrInvalidToken
	}
	idStr, _ := claims["id"].(string)
	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, ErrInvalidToken
	}
	out := &TokenClaims{UserID: id}
	out.Role, _ = claims["role"].(string)
	if exp, ok := claims["exp"].(float64); ok {
		out.ExpiresAt = time.Unix(int64(exp), 0).UTC()
	}
	return out, nil
}
