package main

import (
	"context"
	"fmt"
	"os"

	"health-scheduling-api/cmd/bootstrap"
	"health-scheduling-api/internal/delivery/dto"
	"health-scheduling-api/internal/infrastructure/database"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logrus.Fatalf("%v", err)
	}
}

func newRootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "health-scheduling-api",
		Short:         "Scheduling API for healthcare professionals and their consultations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", ".env", "path to the env file")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP server",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				app, err := bootstrap.New(configPath)
				if err != nil {
					return fmt.Errorf("failed to initialize application: %w", err)
				}
				return app.Run()
			},
		},
		&cobra.Command{
			Use:       "migrate [up|down]",
			Short:     "Apply or revert database migrations",
			Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
			ValidArgs: []string{string(database.Up), string(database.Down)},
			RunE: func(cmd *cobra.Command, args []string) error {
				return bootstrap.RunMigrations(configPath, database.Direction(args[0]))
			},
		},
		newCreateUserCommand(&configPath),
	)

	return root
}

func newCreateUserCommand(configPath *string) *cobra.Command {
	req := &dto.CreateUserRequest{}

	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create an account that can obtain API tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := bootstrap.CreateUser(context.Background(), *configPath, req)
			if err != nil {
				return fmt.Errorf("failed to create user: %w", err)
			}
			fmt.Fprintf(os.Stdout, "Created user %s (%s)\n", user.Email, user.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Email, "email", "", "login email")
	cmd.Flags().StringVar(&req.Password, "password", "", "login password")
	cmd.Flags().StringVar(&req.FullName, "full-name", "", "display name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("full-name")

	return cmd
}
