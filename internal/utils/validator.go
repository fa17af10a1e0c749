// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strconv"

	"github.com/go-playground/validator/v10"
)

// MaxBytesTag bounds a string's length in bytes. The built-in "max" tag
// counts runes, which lets multibyte input exceed byte-oriented limits such
// as bcrypt's.
//
//	Password string `validate:"required,maxbytes=72"`
const MaxBytesTag = "maxbytes"

// NewValidator returns a validator with required-struct checks enabled and
// the [MaxBytesTag] rule registered.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// the tag name is a valid constant, registration cannot fail
	if err := v.RegisterValidation(MaxBytesTag, maxBytes); err != nil {
		panic(err)
	}
	return v
}

func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}
