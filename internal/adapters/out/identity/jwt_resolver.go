// Package identity resolves bearer tokens into principals. Token issuance
// (login, session management) lives outside the workflow engine; this
// adapter only verifies and decodes what the auth subsystem issued.
package identity

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"aquaserve/internal/core/domain/model/kernel"
	"aquaserve/internal/core/domain/model/principal"
	"aquaserve/internal/pkg/errs"
)

// Claims is the JWT payload issued by the auth subsystem.
type Claims struct {
	Role  string `json:"role"`
	OrgID string `json:"org_id,omitempty"`

	jwt.RegisteredClaims
}

// JwtResolver verifies HMAC-signed bearer tokens and builds the principal
// variant for the embedded role.
type JwtResolver struct {
	secret []byte
}

// NewJwtResolver creates a resolver verifying tokens with the given secret.
func NewJwtResolver(secret string) (*JwtResolver, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("secret")
	}
	return &JwtResolver{secret: []byte(secret)}, nil
}

// Resolve verifies the credential and returns the caller's principal.
// Any parse or signature failure is reported as an invalid credential
// without detail, so a caller cannot distinguish a forged token from an
// expired one.
func (r *JwtResolver) Resolve(_ context.Context, credential string) (principal.Principal, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(credential, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return r.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errs.NewValueIsInvalidError("credential")
	}

	userID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return nil, errs.NewValueIsInvalidError("credential")
	}

	var orgID kernel.OrgID
	if claims.OrgID != "" {
		orgID, err = kernel.OrgIDFromString(claims.OrgID)
		if err != nil {
			return nil, errs.NewValueIsInvalidError("credential")
		}
	}

	return principal.New(principal.Role(claims.Role), userID, orgID)
}
