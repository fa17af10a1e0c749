// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRotateCmd(opts *rootOptions) *cobra.Command {
	var email string

	rotateCmd := &cobra.Command{
		Use:   "rotate",
		Short: "Replace an account's password",
		Args:  cobra.NoArgs,
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

			if err = e.services.AccountService.RotateSecret(cmd.Context(), email, password); err != nil {
				return fmt.Errorf("failed to rotate password: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Password of %s rotated\n", email)

			return nil
		},
	}

	rotateCmd.Flags().StringVar(&email, "email", "", "Account e-mail (required)")
	_ = rotateCmd.MarkFlagRequired("email")

	return rotateCmd
}
