// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport of the credential service.
//
// It is a thin wrapper around the credential verifier: a login endpoint that
// turns a successful authentication into a session token, a session endpoint
// that echoes the token's account and role, and a version endpoint. Request
// tracing, access logging, panic recovery and request timeouts are handled
// here before requests reach the service layer.
package http
