package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email string `validate:"required,email"`
	Name  string `validate:"max=3"`
}

func TestIssuesFromValidatorErrors(t *testing.T) {
	v := validator.New()
	err := v.Struct(sample{Email: "not-an-email", Name: "too long"})
	require.Error(t, err)

	issues := Issues(err)
	require.Len(t, issues, 2)
	assert.Equal(t, "Email", issues[0].Field)
	assert.Contains(t, issues[0].Message, "not a valid email")
	assert.Equal(t, "Name", issues[1].Field)
	assert.Contains(t, issues[1].Message, "at most 3")
}

func TestIssuesFromPlainError(t *testing.T) {
	issues := Issues(errors.New("unexpected EOF"))
	require.Len(t, issues, 1)
	assert.Empty(t, issues[0].Field)
	assert.Equal(t, "unexpected EOF", issues[0].Message)
}
