package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/febra/internal/db"
	"github.com/terraincognita07/febra/internal/security"
	"github.com/terraincognita07/febra/internal/services"
	"golang.org/x/crypto/bcrypt"
)

var resetPasswordEmail string

var resetPasswordCmd = &cobra.Command{
	Use:   "reset-password",
	Short: "Issue a temporary password for a locked-out user",
	Args:  cobra.NoArgs,
	RunE:  runResetPassword,
}

func init() {
	resetPasswordCmd.Flags().StringVar(&resetPasswordEmail, "email", "", "Email of the account to reset (required)")
	_ = resetPasswordCmd.MarkFlagRequired("email")
}

func runResetPassword(cmd *cobra.Command, args []string) error {
	email := services.NormalizeAuthEmail(resetPasswordEmail)
	if email == "" {
		return errors.New("invalid email address")
	}

	database, err := db.OpenSQLite(defaultDBPath())
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	defer func() {
		_ = db.CloseSQLite(database)
	}()

	repositories := db.NewRepositories(database)
	user, err := repositories.Users.FindByNormalizedEmail(email)
	if err != nil {
		return fmt.Errorf("user %s not found", email)
	}

	temporaryPassword, err := generateTemporaryPassword(12)
	if err != nil {
		return fmt.Errorf("generate temporary password: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(temporaryPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash temporary password: %w", err)
	}

	if err := repositories.Users.UpdatePassword(user.ID, string(passwordHash), true); err != nil {
		return fmt.Errorf("update user password: %w", err)
	}

	fmt.Println("Password reset successful")
	fmt.Printf("Temporary password: %s\n", temporaryPassword)
	fmt.Println("User must change password on next login.")
	return nil
}

func generateTemporaryPassword(length int) (string, error) {
	if length < 8 {
		length = 8
	}

	// No ambiguous characters (0/O, 1/l/I): the password is read aloud
	// or retyped from a terminal.
	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"
	return security.RandomString(length, alphabet)
}
