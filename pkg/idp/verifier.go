package idp

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken is returned when the token is invalid.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken is returned when the token has expired.
	ErrExpiredToken = errors.New("token has expired")
	// ErrInvalidIssuer is returned when the token issuer doesn't match.
	ErrInvalidIssuer = errors.New("invalid token issuer")
	// ErrInvalidAudience is returned when the token audience doesn't match.
	ErrInvalidAudience = errors.New("invalid token audience")
	// ErrJWKSUnavailable is returned when JWKS cannot be fetched.
	ErrJWKSUnavailable = errors.New("JWKS endpoint unavailable")
	// ErrKeyNotFound is returned when the key ID is not found in JWKS.
	ErrKeyNotFound = errors.New("key not found in JWKS")
)

// JWK represents a JSON Web Key.
type JWK struct {
	Kid string `json:"kid"`
	Kty string `json:"kty"`
	Alg string `json:"alg"`
	Use string `json:"use"`
	N   string `json:"n"`
	E   string `json:"e"`
}

// JWKS represents a JSON Web Key Set.
type JWKS struct {
	Keys []JWK `json:"keys"`
}

// Config holds configuration for the verifier.
type Config struct {
	JWKSURL         string
	IssuerURL       string
	Audience        string // Optional
	RefreshInterval time.Duration
	HTTPTimeout     time.Duration
	// RequireInitialFetch if true, NewVerifier fails when the initial JWKS
	// fetch fails. If false (default), the verifier starts and retries in
	// background.
	RequireInitialFetch bool
}

// Verifier validates identity provider JWTs using JWKS.
type Verifier struct {
	jwksURL    string
	issuerURL  string
	audience   string
	httpClient *http.Client

	mu        sync.RWMutex
	keys      map[string]*rsa.PublicKey
	lastFetch time.Time
	refresh   time.Duration

	ctx    context.Context
	cancel context.CancelFunc
}

// NewVerifier creates a new credential verifier.
func NewVerifier(ctx context.Context, cfg Config) (*Verifier, error) {
	if cfg.JWKSURL == "" {
		return nil, fmt.Errorf("JWKS URL is required")
	}
	if cfg.RefreshInterval == 0 {
		cfg.RefreshInterval = time.Hour
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 10 * time.Second
	}

	ctx, cancel := context.WithCancel(ctx)

	v := &Verifier{
		jwksURL:    cfg.JWKSURL,
		issuerURL:  cfg.IssuerURL,
		audience:   cfg.Audience,
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		keys:       make(map[string]*rsa.PublicKey),
		refresh:    cfg.RefreshInterval,
		ctx:        ctx,
		cancel:     cancel,
	}

	if err := v.refreshKeys(); err != nil {
		if cfg.RequireInitialFetch {
			cancel()
			return nil, fmt.Errorf("failed to fetch initial JWKS: %w", err)
		}
	}

	go v.backgroundRefresh()

	return v, nil
}

// refreshKeys fetches the JWKS and updates the cached keys.
func (v *Verifier) refreshKeys() error {
	req, err := http.NewRequestWithContext(v.ctx, http.MethodGet, v.jwksURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch JWKS: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("JWKS endpoint returned status %d", resp.StatusCode)
	}

	var jwks JWKS
	if err := json.NewDecoder(resp.Body).Decode(&jwks); err != nil {
		return fmt.Errorf("failed to decode JWKS: %w", err)
	}

	newKeys := make(map[string]*rsa.PublicKey)
	for _, key := range jwks.Keys {
		if key.Kty != "RSA" {
			continue
		}
		pubKey, err := jwkToRSAPublicKey(key)
		if err != nil {
			continue // Skip invalid keys
		}
		newKeys[key.Kid] = pubKey
	}

	v.mu.Lock()
	v.keys = newKeys
	v.lastFetch = time.Now()
	v.mu.Unlock()

	return nil
}

// backgroundRefresh periodically refreshes the JWKS.
func (v *Verifier) backgroundRefresh() {
	ticker := time.NewTicker(v.refresh)
	defer ticker.Stop()

	for {
		select {
		case <-v.ctx.Done():
			return
		case <-ticker.C:
			_ = v.refreshKeys()
		}
	}
}

// getKey returns the RSA public key for the given key ID.
func (v *Verifier) getKey(kid string) (*rsa.PublicKey, error) {
	v.mu.RLock()
	key, ok := v.keys[kid]
	keysEmpty := len(v.keys) == 0
	v.mu.RUnlock()

	if ok {
		return key, nil
	}

	// Key not found, try refreshing (key rotation)
	if err := v.refreshKeys(); err != nil {
		if keysEmpty {
			return nil, ErrJWKSUnavailable
		}
		return nil, ErrKeyNotFound
	}

	v.mu.RLock()
	key, ok = v.keys[kid]
	v.mu.RUnlock()

	if !ok {
		return nil, ErrKeyNotFound
	}

	return key, nil
}

// HasKeys returns true if the verifier has at least one key loaded.
func (v *Verifier) HasKeys() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.keys) > 0
}

// Verify validates a bearer token and returns the verified identity.
func (v *Verifier) Verify(tokenString string) (*Identity, error) {
	claims := &Claims{}

	// Parse without verification first to get the key ID
	parser := jwt.NewParser()
	token, _, err := parser.ParseUnverified(tokenString, claims)
	if err != nil {
		return nil, ErrInvalidToken
	}

	kid, ok := token.Header["kid"].(string)
	if !ok || kid == "" {
		return nil, fmt.Errorf("%w: missing key ID", ErrInvalidToken)
	}

	pubKey, err := v.getKey(kid)
	if err != nil {
		return nil, err
	}

	parserOpts := []jwt.ParserOption{
		jwt.WithExpirationRequired(),
	}
	if v.issuerURL != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(v.issuerURL))
	}

	keyFunc := func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return pubKey, nil
	}

	claims = &Claims{}
	token, err = jwt.ParseWithClaims(tokenString, claims, keyFunc, parserOpts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		if errors.Is(err, jwt.ErrTokenMalformed) || errors.Is(err, jwt.ErrSignatureInvalid) {
			return nil, ErrInvalidToken
		}
		if errors.Is(err, jwt.ErrTokenInvalidIssuer) {
			return nil, ErrInvalidIssuer
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	if v.audience != "" {
		aud, err := claims.GetAudience()
		if err != nil {
			return nil, ErrInvalidAudience
		}
		validAudience := false
		for _, a := range aud {
			if a == v.audience {
				validAudience = true
				break
			}
		}
		// Also check azp (authorized party) as fallback
		if !validAudience && claims.Azp != v.audience {
			return nil, ErrInvalidAudience
		}
	}

	identity := claims.ToIdentity()
	return &identity, nil
}

// Close shuts down the JWKS background refresh.
func (v *Verifier) Close() error {
	v.cancel()
	return nil
}

// jwkToRSAPublicKey converts a JWK to an RSA public key.
func jwkToRSAPublicKey(jwk JWK) (*rsa.PublicKey, error) {
	nBytes, err := base64.RawURLEncoding.DecodeString(jwk.N)
	if err != nil {
		return nil, fmt.Errorf("failed to decode modulus: %w", err)
	}
	n := new(big.Int).SetBytes(nBytes)

	eBytes, err := base64.RawURLEncoding.DecodeString(jwk.E)
	if err != nil {
		return nil, fmt.Errorf("failed to decode exponent: %w", err)
	}
	var e int
	for _, b := range eBytes {
		e = e<<8 + int(b)
	}

	return &rsa.PublicKey{N: n, E: e}, nil
}
