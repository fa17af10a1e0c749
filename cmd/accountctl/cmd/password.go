// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errEmptyPassword = errors.New("password is required")

// termReadPassword is a test seam for term.ReadPassword.
var termReadPassword = term.ReadPassword

// readPassword reads a password without echo when standard input is a
// terminal, and otherwise takes the first line of the command's input.
func readPassword(cmd *cobra.Command) (string, error) {
	in := cmd.InOrStdin()

	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.ErrOrStderr(), "Enter password: ")
		pw, err := termReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		if len(pw) == 0 {
			return "", errEmptyPassword
		}
		return string(pw), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", errEmptyPassword
	}

	return password, nil
}
