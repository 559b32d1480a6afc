package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundErrorStackNamesLookup(t *testing.T) {
	err := NewNotFoundError("personal email", "nobody@pearsonhardman.com")

	assert.EqualError(t, err, "No data found.")
	assert.True(t, IsNotFound(err))

	stack := Stack(err)
	assert.Contains(t, stack, `No data found. (personal email = "nobody@pearsonhardman.com")`)
	assert.Contains(t, stack, "github.com/Daskott/postbook/server/errs.NewNotFoundError")
}

func TestErrorKinds(t *testing.T) {
	cause := errors.New("timeout")

	testCases := []struct {
		description string
		err         error
		is          func(error) bool
		expectedMsg string
	}{
		{"Should classify validation errors", NewValidationError("Invalid name."), IsValidation, "Invalid name."},
		{"Should classify storage errors", NewStorageError("Query", cause), IsStorage, "Query: timeout"},
		{"Should classify malformed requests", NewMalformedRequestError(cause), IsMalformedRequest, "malformed request body: timeout"},
	}

	for _, tc := range testCases {
		assert.True(t, tc.is(tc.err), tc.description)
		assert.EqualError(t, tc.err, tc.expectedMsg, tc.description)
		assert.Contains(t, Stack(tc.err), tc.expectedMsg, tc.description)
	}

	assert.True(t, errors.Is(NewStorageError("Query", cause), cause))
	assert.Equal(t, "", Stack(nil))
}
