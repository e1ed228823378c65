package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"health-scheduling-api/internal/delivery/http/middleware"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestConstraintErrors(t *testing.T) {
	fk := &pgconn.PgError{Code: "23503", ConstraintName: "fk_consultations_professional"}
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "uq_users_email"}

	assert.True(t, isForeignKeyError(fk, "professional"))
	assert.True(t, isForeignKeyError(fmt.Errorf("delete: %w", fk), "PROFESSIONAL"))
	assert.False(t, isForeignKeyError(fk, "payments"))
	assert.False(t, isForeignKeyError(unique, "email"))

	assert.True(t, isDuplicateKeyError(unique, "email"))
	assert.False(t, isDuplicateKeyError(errors.New("23505"), "email"))
}

func TestActorFromContext(t *testing.T) {
	assert.Nil(t, actorFromContext(context.Background()))

	userID := uuid.New()
	ctx := context.WithValue(context.Background(), middleware.UserIDKey, userID)
	actor := actorFromContext(ctx)
	if assert.NotNil(t, actor) {
		assert.Equal(t, userID, *actor)
	}
}
