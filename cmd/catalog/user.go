package main

import (
	"errors"
	"fmt"

	"github.com/amd4k/ZHV/internal/model"
	"github.com/amd4k/ZHV/internal/storage"
	"github.com/amd4k/ZHV/pkg/database"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage admin dashboard users",
}

var (
	newUsername string
	newPassword string
	newIsAdmin  bool
)

var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a dashboard user",
	RunE: func(cmd *cobra.Command, args []string) error {
		if newUsername == "" || len(newPassword) < 8 {
			return errors.New("--username is required and --password must be at least 8 characters")
		}

		db, err := database.Open(&appConfig.DB)
		if err != nil {
			return err
		}
		defer database.Close(db)
		if err := database.Migrate(db); err != nil {
			return err
		}

		user := &model.User{Username: newUsername, IsAdmin: newIsAdmin}
		if err := user.SetPassword(newPassword); err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		if err := storage.New(db).CreateUser(cmd.Context(), user); err != nil {
			if errors.Is(err, storage.ErrDuplicateKey) {
				return fmt.Errorf("user %q already exists", newUsername)
			}
			return err
		}

		log.Info("User created",
			zap.String("user_id", user.ID),
			zap.String("username", user.Username),
			zap.Bool("admin", user.IsAdmin))
		return nil
	},
}

func init() {
	userCreateCmd.Flags().StringVar(&newUsername, "username", "", "Login name")
	userCreateCmd.Flags().StringVar(&newPassword, "password", "", "Password (min 8 characters)")
	userCreateCmd.Flags().BoolVar(&newIsAdmin, "admin", false, "Grant admin access")
	userCmd.AddCommand(userCreateCmd)
}
