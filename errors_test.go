package kbingest_test

import (
	"testing"

	"kbingest"

	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := kbingest.Errorf(kbingest.ENOTFOUND, "rule for %q not found", "test")

	assert.Equal(t, kbingest.ENOTFOUND, kbingest.ErrorCode(err))
	assert.Equal(t, "rule for \"test\" not found", kbingest.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, kbingest.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, kbingest.ErrorMessage(nil))
}
