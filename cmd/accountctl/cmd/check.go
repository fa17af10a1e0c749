// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd(opts *rootOptions) *cobra.Command {
	var email string

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Diagnose a login without revealing secrets",
		Long: `Run the same checks as a login and print each outcome as a boolean:

  account_found    an account with exactly this e-mail exists
  hash_recognized  its stored hash is in a supported format
  secret_matches   the password matches the stored hash

Neither the password nor the stored hash is ever printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readPassword(cmd)
			if err != nil {
				return err
			}

			e, err := openEnv(cmd, opts)
			if err != nil {
				return err
			}
			defer e.close()

			diagnosis, err := e.services.CredentialService.Diagnose(cmd.Context(), email, password)
			if err != nil {
				return fmt.Errorf("failed to check credentials: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "account_found: %t\n", diagnosis.AccountFound)
			fmt.Fprintf(out, "hash_recognized: %t\n", diagnosis.HashRecognized)
			fmt.Fprintf(out, "secret_matches: %t\n", diagnosis.SecretMatches)

			return nil
		},
	}

	checkCmd.Flags().StringVar(&email, "email", "", "Account e-mail (required)")
	_ = checkCmd.MarkFlagRequired("email")

	return checkCmd
}
