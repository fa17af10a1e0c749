// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// Role is the access classification of an [Account].
type Role string

const (
	RoleAdministrator Role = "administrator"
	RoleStandard      Role = "standard"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdministrator, RoleStandard:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// ParseRole converts s into a [Role], rejecting unknown values.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}
