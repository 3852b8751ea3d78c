package tfdocs_test

import (
	"errors"
	"testing"

	tfdocs "github.com/IdoAtNP/terraform-resource-docs"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := tfdocs.Errorf(tfdocs.ENOTFOUND, "section %q not found", "Example Usage")

	assert.Equal(t, tfdocs.ENOTFOUND, tfdocs.ErrorCode(err))
	assert.Equal(t, "section \"Example Usage\" not found", tfdocs.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, tfdocs.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, tfdocs.EINTERNAL, tfdocs.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, tfdocs.ErrorMessage(nil))
}
