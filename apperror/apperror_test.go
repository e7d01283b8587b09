package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoriesUnwrap(t *testing.T) {
	assert.ErrorIs(t, InvalidInput("bad state"), ErrInvalidInput)
	assert.ErrorIs(t, NotFound("user"), ErrNotFound)
	assert.ErrorIs(t, Upstream("exchange code", errors.New("boom")), ErrUpstream)
	assert.ErrorIs(t, Storage("create user", errors.New("boom")), ErrStorage)
}

func TestMessages(t *testing.T) {
	assert.Equal(t, "user not found", NotFound("user").Error())
	assert.Equal(t, "bad state", InvalidInput("bad state").Error())

	cause := errors.New(`{"error":"bad_verification_code"}`)
	err := Upstream("exchange code", cause)
	assert.Contains(t, err.Error(), "bad_verification_code", "provider body must survive wrapping")
}

func TestWrappedThroughFmt(t *testing.T) {
	err := fmt.Errorf("callback failed: %w", InvalidInput("bad state"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}
