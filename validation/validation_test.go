package validation_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/infotrace/validation"
)

var errSample = errors.New("sample: bad input")

func TestError_UnwrapsBothSentinels(t *testing.T) {
	err := validation.New("sample.Op", errSample)

	assert.ErrorIs(t, err, validation.ErrValidation)
	assert.ErrorIs(t, err, errSample)
	assert.True(t, validation.Is(err))
	assert.Equal(t, "sample.Op: sample: bad input", err.Error())
}

func TestError_DetailAndWrapping(t *testing.T) {
	err := validation.Newf("sample.Op", errSample, "got %d", 3)
	wrapped := fmt.Errorf("caller: %w", err)

	assert.Equal(t, "sample.Op: sample: bad input: got 3", err.Error())
	assert.ErrorIs(t, wrapped, errSample)
	assert.True(t, validation.Is(wrapped))

	var ve *validation.Error
	assert.True(t, errors.As(wrapped, &ve))
	assert.Equal(t, "sample.Op", ve.Op)
}

func TestIs_PlainError(t *testing.T) {
	assert.False(t, validation.Is(errSample))
	assert.False(t, validation.Is(nil))
}
