package auth

import (
	"crypto"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// IdentityClaims is the token payload asserted by the identity provider
type IdentityClaims struct {
	jwt.RegisteredClaims
	Email           *string `json:"email,omitempty"`
	FirstName       *string `json:"given_name,omitempty"`
	LastName        *string `json:"family_name,omitempty"`
	ProfileImageURL *string `json:"picture,omitempty"`
}

// JwtValidator verifies identity provider tokens
type JwtValidator struct {
	method    jwt.SigningMethod
	publicKey crypto.PublicKey
}

// NewJwtValidator builds new JwtValidator
func NewJwtValidator(method jwt.SigningMethod, key crypto.PublicKey) *JwtValidator {
	return &JwtValidator{publicKey: key, method: method}
}

// Verify checks token signature and expiry and returns parsed claims
func (j *JwtValidator) Verify(rawToken string) (IdentityClaims, error) {
	var claims IdentityClaims
	if _, err := jwt.ParseWithClaims(rawToken, &claims, j.keyFunc); err != nil {
		return IdentityClaims{}, err
	}

	if claims.Subject == "" {
		return IdentityClaims{}, errors.New("token is missing subject claim")
	}
	return claims, nil
}

func (j *JwtValidator) keyFunc(token *jwt.Token) (any, error) {
	if token.Method.Alg() != j.method.Alg() {
		return nil, errors.New("failed to verify signing algorithm")
	}
	return j.publicKey, nil
}

// JwtIssuer issues identity tokens. Production tokens come from the external
// provider, so the issuer exists for local setups and tests.
type JwtIssuer struct {
	issuer     string
	method     jwt.SigningMethod
	timeToLive time.Duration
	privateKey crypto.PrivateKey
}

// NewJwtIssuer builds JwtIssuer
func NewJwtIssuer(issuer string, method jwt.SigningMethod, ttl time.Duration, key crypto.PrivateKey) *JwtIssuer {
	return &JwtIssuer{
		issuer:     issuer,
		method:     method,
		timeToLive: ttl,
		privateKey: key,
	}
}

// Sign issues new token for provided subject with identity attributes
func (j *JwtIssuer) Sign(subj string, identity IdentityClaims, issuedAt time.Time) (string, error) {
	claims := IdentityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    j.issuer,
			Subject:   subj,
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(j.timeToLive)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
		},
		Email:           identity.Email,
		FirstName:       identity.FirstName,
		LastName:        identity.LastName,
		ProfileImageURL: identity.ProfileImageURL,
	}

	token := jwt.NewWithClaims(j.method, claims)
	return token.SignedString(j.privateKey)
}
