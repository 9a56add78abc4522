package draftdiff_test

import (
	"testing"

	"github.com/draftdiff/draftdiff"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := draftdiff.Errorf(draftdiff.ENOTFOUND, "version %q not found", "v1")

	assert.Equal(t, draftdiff.ENOTFOUND, draftdiff.ErrorCode(err))
	assert.Equal(t, "version \"v1\" not found", draftdiff.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, draftdiff.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, draftdiff.ErrorMessage(nil))
}
