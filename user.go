package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mustafagenc/planly/connection"
	"github.com/mustafagenc/planly/model"
	"github.com/mustafagenc/planly/services"
	"github.com/spf13/cobra"
)

var (
	userName     string
	userEmail    string
	userRole     string
	userPassword string
	hashCost     int
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage accounts",
}

var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an account, ignoring the registration setting",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		role := strings.ToUpper(userRole)
		if role != model.RoleAdmin && role != model.RoleUser {
			return fmt.Errorf("role must be ADMIN or USER")
		}
		password := userPassword
		if password == "" {
			var err error
			password, err = readSecret(cmd.InOrStdin(), "Password: ")
			if err != nil {
				return err
			}
		}

		cfg, st, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		user, err := connection.NewAuthService(cfg.Auth, st).CreateUser(cmd.Context(), userName, userEmail, password, role)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created %s %s (%s)\n", user.Role, user.Email, user.UserID)
		return nil
	},
}

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password [password]",
	Short: "Print a bcrypt hash of a password",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var password string
		if len(args) == 1 {
			password = args[0]
		} else {
			var err error
			password, err = readSecret(cmd.InOrStdin(), "Password: ")
			if err != nil {
				return err
			}
		}
		if password == "" {
			return errors.New("password is empty")
		}
		hash, err := services.HashPassword(password, hashCost)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), hash)
		return nil
	},
}

func init() {
	userCreateCmd.Flags().StringVar(&userName, "name", "", "display name")
	userCreateCmd.Flags().StringVar(&userEmail, "email", "", "login email")
	userCreateCmd.Flags().StringVar(&userRole, "role", model.RoleUser, "ADMIN or USER")
	userCreateCmd.Flags().StringVar(&userPassword, "password", "", "password (prompted when omitted)")
	_ = userCreateCmd.MarkFlagRequired("name")
	_ = userCreateCmd.MarkFlagRequired("email")
	userCmd.AddCommand(userCreateCmd)

	hashPasswordCmd.Flags().IntVar(&hashCost, "cost", 12, "bcrypt cost")

	rootCmd.AddCommand(userCmd, hashPasswordCmd)
}
