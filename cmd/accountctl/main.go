// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command accountctl provisions accounts of the credential service, rotates
// their passwords and diagnoses failing logins.
package main

import "github.com/medineo/erp-auth/cmd/accountctl/cmd"

func main() {
	cmd.Execute()
}
