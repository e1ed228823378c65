package validation

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_NoFailures(t *testing.T) {
	err := Validate(
		MinLength("name", "Ana", 2, "too short"),
		MaxLength("name", "Ana", 255, "too long"),
		Required("contact", true),
	)

	assert.NoError(t, err)
}

func TestValidate_AggregatesInOrder(t *testing.T) {
	err := Validate(
		MinLength("name", "A", 2, "too short"),
		Check("name", false, "bad name"),
		Required("contact", false),
	)
	require.Error(t, err)

	var errs Errors
	require.True(t, errors.As(err, &errs))
	assert.Equal(t, []string{"too short", "bad name"}, errs["name"])
	assert.Equal(t, []string{"This field is required."}, errs["contact"])

	field, message := errs.First()
	assert.Equal(t, "contact", field)
	assert.Equal(t, "This field is required.", message)
	assert.Equal(t, "contact: This field is required.; name: too short, bad name", errs.Error())
}

func TestValidate_WrappedErrorsStillMatch(t *testing.T) {
	err := fmt.Errorf("create: %w", Validate(Required("field", false)))

	var errs Errors
	assert.True(t, errors.As(err, &errs))
}

func TestMinLength_CountsRunes(t *testing.T) {
	assert.Nil(t, MinLength("name", "Zé", 2, "short")())
	assert.NotNil(t, MinLength("name", "é", 2, "short")())
}

func TestMaxLength(t *testing.T) {
	assert.Nil(t, MaxLength("name", "abc", 3, "long")())
	assert.NotNil(t, MaxLength("name", "abcd", 3, "long")())
}

func TestNotBefore(t *testing.T) {
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	assert.Nil(t, NotBefore("scheduled_at", now, now, "past")(), "equal instant is accepted")
	assert.Nil(t, NotBefore("scheduled_at", now.Add(time.Second), now, "past")())
	assert.NotNil(t, NotBefore("scheduled_at", now.Add(-time.Nanosecond), now, "past")())
}

func TestErrors_ErrOnEmpty(t *testing.T) {
	assert.Nil(t, Errors{}.Err())
	assert.Nil(t, Collect().Err())
}
