package bootstrap

import (
	"context"
	"fmt"

	"health-scheduling-api/internal/delivery/dto"
	"health-scheduling-api/internal/infrastructure/database"
	"health-scheduling-api/internal/repository"
	"health-scheduling-api/internal/usecase"
	"health-scheduling-api/pkg/validator"
)

// RunMigrations moves the schema in the given direction.
func RunMigrations(configPath string, direction database.Direction) error {
	cfg, log, err := Load(configPath)
	if err != nil {
		return err
	}
	return database.Migrate(cfg.DB.MigrationURL(), direction, log)
}

// CreateUser provisions an account for the token endpoints. There is no
// public registration route.
func CreateUser(ctx context.Context, configPath string, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	customValidator := validator.NewValidator()
	if err := customValidator.Validate(req); err != nil {
		return nil, fmt.Errorf("invalid user: %v", customValidator.FormatValidationErrors(err))
	}

	cfg, log, err := Load(configPath)
	if err != nil {
		return nil, err
	}

	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.IsProduction())
	if err != nil {
		return nil, err
	}
	app := &App{Config: cfg, Log: log, DB: db}
	defer app.Close()

	// Token storage is never touched while creating a user.
	authUsecase := usecase.NewAuthUsecase(repository.NewTransactor(db), log, repository.NewUserRepository(), nil, nil)
	return authUsecase.CreateUser(ctx, req)
}
