// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the claim set of a session token: the standard
// registered claims plus the role the account had at login time.
type SessionClaims struct {
	jwt.RegisteredClaims

	// Role is the account's role, copied from the authentication result.
	Role Role `json:"role"`
}

// Token wraps a signed session JWT issued after a successful login.
//
// SignedString holds the compact serialized form (header.payload.signature)
// that travels in the Authorization header. AccountID and Role are cached
// copies of the "sub" and "role" claims, populated when the token is issued
// or parsed.
type Token struct {
	// Token is the underlying JWT. Excluded from JSON serialization because
	// only the compact string form is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// AccountID is the owner identifier extracted from the "sub" claim.
	AccountID int64 `json:"-"`

	// Role is the role claim.
	Role Role `json:"-"`
}

// AccountIDFromClaims parses the "sub" claim of claims as a base-10 int64.
//
// Returns an error if the subject claim is missing, empty, or cannot be
// converted to int64.
func AccountIDFromClaims(claims *SessionClaims) (int64, error) {
	subject, err := claims.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting AccountID from token: %w", err)
	}
	if subject == "" {
		return 0, fmt.Errorf("error extracting AccountID from token: empty subject")
	}

	accountID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting AccountID from token to int64: %w", err)
	}

	return accountID, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
