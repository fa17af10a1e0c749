// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Account is one authenticating principal of the ERP back office.
// SecretHash is always a self-describing one-way hash (bcrypt or argon2id);
// the plaintext password is never stored and never leaves the request that
// carried it.
type Account struct {
	// AccountID is the store-assigned identifier. It becomes the "sub" claim
	// of issued session tokens.
	AccountID int64 `json:"account_id"`

	// Identifier is the unique login (an e-mail address). Lookups match it
	// exactly, byte for byte.
	Identifier string `json:"identifier"`

	// SecretHash is the encoded password hash including its salt and cost
	// parameters. Never serialized.
	SecretHash string `json:"-"`

	// Role classifies the principal.
	Role Role `json:"role"`

	// CreatedAt is the provisioning timestamp.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt changes whenever SecretHash is rotated.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}

// AuthResult is the outcome of a successful authentication.
type AuthResult struct {
	AccountID int64 `json:"account_id"`
	Role      Role  `json:"role"`
}

// LoginRequest is the JSON body accepted by the login endpoint.
type LoginRequest struct {
	Login    string `json:"login" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,maxbytes=72"`
}

// Diagnosis carries the boolean-only outcome of a credential check. It is
// what diagnostic logging and the operator CLI expose; it never contains
// secret material.
type Diagnosis struct {
	AccountFound   bool `json:"account_found"`
	HashRecognized bool `json:"hash_recognized"`
	SecretMatches  bool `json:"secret_matches"`
}
