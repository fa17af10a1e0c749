// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// credential service's HTTP handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe the outcome of an operation. Keeping them
// in one place keeps failed logins worded identically whatever the cause.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidDataProvided is returned when the request body fails
	// validation (e.g. missing or malformed login).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned for every rejected login: unknown
	// account and wrong password alike.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgEmptyAuthorizationHeader is returned when a protected route is
	// requested without an Authorization header.
	MsgEmptyAuthorizationHeader = "empty authorization header"

	// MsgInvalidAuthorizationHeader is returned when the Authorization
	// header is not of the form "Bearer <token>".
	MsgInvalidAuthorizationHeader = "invalid authorization header"
)
