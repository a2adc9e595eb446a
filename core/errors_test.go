package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodes(t *testing.T) {
	err := Error(EINVALID, "no such value: %q", "sideways")
	assert.Equal(t, EINVALID, Code(err))
	assert.Equal(t, `no such value: "sideways"`, UserMessage(err))
	assert.Equal(t, `[123] invalid: no such value: "sideways"`, err.Error())
	//
	wrapped := fmt.Errorf("config: %w", err)
	assert.Equal(t, EINVALID, Code(wrapped))
	//
	assert.Equal(t, NOERROR, Code(nil))
	assert.Equal(t, EINTERNAL, Code(errors.New("plain")))
	assert.Equal(t, "", UserMessage(nil))
}

func TestWrapError(t *testing.T) {
	base := errors.New("bad dimension")
	err := WrapError(base, EINVALID, "option %s", "indent")
	assert.True(t, errors.Is(err, base))
	assert.Equal(t, "option indent", UserMessage(err))
	//
	err = ErrorWithCode(nil, EMISSING)
	assert.Equal(t, "[122] not found", err.Error())
}
