package models

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/Daskott/postbook/server/errs"
	"github.com/stretchr/testify/assert"
)

func TestDecodePost(t *testing.T) {
	post, err := DecodePost(strings.NewReader(`{"postId": "7", "Phone": 5551234567, "name": "Jessica Pearson"}`))
	assert.Nil(t, err)
	assert.Equal(t, "7", post.PostID())
	assert.Equal(t, json.Number("5551234567"), post[FieldPhone])
	assert.Equal(t, "5551234567", post.StringValue(FieldPhone))
	assert.Equal(t, "Jessica Pearson", post.StringValue(FieldName))
	assert.Equal(t, "", post.Email())
}

func TestDecodePostRejectsMalformedBody(t *testing.T) {
	bodies := []string{
		"", "{", "null", `["postId"]`, `"postId"`,
		`{"postId": "1"} this is not json`,
		`{"postId": "1"}}`,
		`{"postId": "1"} {"postId": "2"}`,
	}

	for _, body := range bodies {
		_, err := DecodePost(strings.NewReader(body))
		assert.True(t, errs.IsMalformedRequest(err), "body %q should be rejected", body)
	}
}

func TestCheckUpdatable(t *testing.T) {
	testCases := []struct {
		description string
		post        Post
		expectedErr string
	}{
		{"Should require postId", Post{FieldPhone: "5551234567"}, msgPostIDRequired},
		{"Should treat empty postId as missing", Post{FieldPostID: "", FieldPhone: "5551234567"}, msgPostIDRequired},
		{"Should require at least one field besides postId", Post{FieldPostID: "1"}, msgNoFieldsProvided},
		{"Should accept postId with one field", Post{FieldPostID: "1", FieldPhone: "5551234567"}, ""},
	}

	for _, tc := range testCases {
		err := tc.post.CheckUpdatable()
		if tc.expectedErr == "" {
			assert.Nil(t, err, tc.description)
			continue
		}
		assert.EqualError(t, err, tc.expectedErr, tc.description)
		assert.True(t, errs.IsValidation(err), tc.description)
	}
}

func TestUpdateFieldsExcludesPostID(t *testing.T) {
	fields := validPost().UpdateFields()

	assert.NotContains(t, fields, FieldPostID)
	assert.Len(t, fields, len(UpdatableFields))
	for _, field := range UpdatableFields {
		assert.Contains(t, fields, field)
		assert.True(t, IsUpdatableField(field))
	}
	assert.False(t, IsUpdatableField(FieldPostID))
	assert.False(t, IsUpdatableField("nickname"))
}
