package main

import (
	"errors"
	"fmt"
	"os"

	"cat-shelter-admin/internal/adapters/auth/password"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newHashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password",
		Short: "Genera el hash argon2id para STAFF_PASSWORD_HASH",
		RunE: func(cmd *cobra.Command, _ []string) error {
			secret, err := readSecret("Secreto del personal: ")
			if err != nil {
				return err
			}
			confirm, err := readSecret("Repetir: ")
			if err != nil {
				return err
			}
			if secret != confirm {
				return errors.New("secrets do not match")
			}

			hash, err := password.Hash(secret)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}

func readSecret(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("hash-password needs an interactive terminal")
	}
	fmt.Fprint(os.Stderr, prompt)
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read secret: %w", err)
	}
	if len(b) == 0 {
		return "", errors.New("secret cannot be empty")
	}
	return string(b), nil
}
