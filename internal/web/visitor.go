package web

import (
	"context"
	"crypto/sha256"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/hkdf"
)

const (
	visitorCookie = "elenorm_visitor"
	visitorTTL    = 365 * 24 * time.Hour
	visitorIssuer = "storefront"
	hkdfInfo      = "storefront visitor cookie v1"
)

var errInvalidVisitor = errors.New("invalid visitor token")

// VisitorTokens signs the visitor cookie. The cart slot is scoped by the id
// inside it, the same way browser storage is scoped to a profile.
type VisitorTokens struct {
	key []byte
}

// NewVisitorTokens derives the HMAC key from secret so the raw secret is never
// used directly as a signing key.
func NewVisitorTokens(secret string) (*VisitorTokens, error) {
	key := make([]byte, 32)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(hkdfInfo)), key); err != nil {
		return nil, err
	}
	return &VisitorTokens{key: key}, nil
}

func NewVisitorID() string {
	return "v_" + uuid.NewString()
}

func (t *VisitorTokens) New(visitorID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   visitorID,
		Issuer:    visitorIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.key)
}

func (t *VisitorTokens) Parse(tokenStr string) (string, error) {
	var c jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(tokenStr, &c, func(*jwt.Token) (any, error) {
		return t.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(visitorIssuer),
	)
	if err != nil || token == nil || !token.Valid || c.Subject == "" {
		return "", errInvalidVisitor
	}
	return c.Subject, nil
}

type ctxKey string

const visitorKey ctxKey = "visitor"

func VisitorFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(visitorKey).(string)
	return v, ok && v != ""
}

func WithVisitor(ctx context.Context, visitorID string) context.Context {
	return context.WithValue(ctx, visitorKey, visitorID)
}

// Visitor resolves the visitor from the cookie, minting a new one when the
// cookie is missing or does not verify.
func Visitor(tokens *VisitorTokens) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if c, err := r.Cookie(visitorCookie); err == nil {
				if id, err := tokens.Parse(c.Value); err == nil {
					next.ServeHTTP(w, r.WithContext(WithVisitor(r.Context(), id)))
					return
				}
			}

			id := NewVisitorID()
			tok, err := tokens.New(id, visitorTTL)
			if err != nil {
				http.Error(w, "server error", http.StatusInternalServerError)
				return
			}
			http.SetCookie(w, &http.Cookie{
				Name:     visitorCookie,
				Value:    tok,
				Path:     "/",
				MaxAge:   int(visitorTTL.Seconds()),
				HttpOnly: true,
				Secure:   r.TLS != nil,
				SameSite: http.SameSiteLaxMode,
			})
			next.ServeHTTP(w, r.WithContext(WithVisitor(r.Context(), id)))
		})
	}
}
