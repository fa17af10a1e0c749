// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/medineo/erp-auth/models"
)

func newCreateCmd(opts *rootOptions) *cobra.Command {
	var (
		email string
		role  string
	)

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create an account",
		Long: `Create an account with the given e-mail and role. The password is read from
the terminal without echo, or from the first line of standard input.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsedRole, err := models.ParseRole(role)
			if err != nil {
				return err
			}

			password, err := readPassword(cmd)
			if err != nil {
				return err
			}

			e, err := openEnv(cmd, opts)
			if err != nil {
				return err
			}
			defer e.close()

			account, err := e.services.AccountService.Provision(cmd.Context(), email, password, parsedRole)
			if err != nil {
				return fmt.Errorf("failed to create account: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Account created successfully!")
			fmt.Fprintf(out, "Account ID: %d\n", account.AccountID)
			fmt.Fprintf(out, "Email: %s\n", account.Identifier)
			fmt.Fprintf(out, "Role: %s\n", account.Role)

			return nil
		},
	}

	createCmd.Flags().StringVar(&email, "email", "", "Account e-mail (required)")
	createCmd.Flags().StringVar(&role, "role", string(models.RoleStandard), "Account role (administrator, standard)")
	_ = createCmd.MarkFlagRequired("email")

	return createCmd
}
