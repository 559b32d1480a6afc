package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/Daskott/postbook/server/errs"
)

const (
	FieldPostID               = "postId"
	FieldName                 = "name"
	FieldAddress              = "Address"
	FieldPhone                = "Phone"
	FieldPersonalEmail        = "personal email"
	FieldEmergencyContactName = "Emergency contact name"
	FieldEmergencyPhoneNumber = "Emergency Phone Number"
)

const (
	msgPostIDRequired   = "postId is required."
	msgNoFieldsProvided = "No fields provided."
)

var (
	errBodyNotAnObject = errors.New("request body must be a JSON object")
	errTrailingData    = errors.New("unexpected data after the JSON object")
)

var (
	requiredFields = []string{
		FieldPostID,
		FieldName,
		FieldAddress,
		FieldPhone,
		FieldPersonalEmail,
		FieldEmergencyContactName,
		FieldEmergencyPhoneNumber,
	}

	// UpdatableFields are the only attributes an update may set.
	UpdatableFields = []string{
		FieldName,
		FieldAddress,
		FieldPhone,
		FieldPersonalEmail,
		FieldEmergencyContactName,
		FieldEmergencyPhoneNumber,
	}
)

// Post is a single record as sent by clients. Keys are attribute names and are
// kept verbatim; values are whatever JSON scalar the client sent.
type Post map[string]interface{}

// DecodePost reads exactly one JSON object from r; anything but whitespace
// after it is an error. Numbers are kept as json.Number so their source text
// survives validation and storage.
func DecodePost(r io.Reader) (Post, error) {
	post := Post{}
	decoder := json.NewDecoder(r)
	decoder.UseNumber()

	var raw interface{}
	if err := decoder.Decode(&raw); err != nil {
		return nil, errs.NewMalformedRequestError(err)
	}

	if _, err := decoder.Token(); err != io.EOF {
		return nil, errs.NewMalformedRequestError(errTrailingData)
	}

	obj, ok := raw.(map[string]interface{})
	if !ok {
		return nil, errs.NewMalformedRequestError(errBodyNotAnObject)
	}

	for key, value := range obj {
		post[key] = value
	}

	return post, nil
}

func (post Post) PostID() string {
	return post.StringValue(FieldPostID)
}

func (post Post) Email() string {
	return post.StringValue(FieldPersonalEmail)
}

// StringValue returns the string form of the attribute, or "" if it is absent.
func (post Post) StringValue(field string) string {
	value, ok := post[field]
	if !ok {
		return ""
	}
	return stringify(value)
}

// Has reports whether the attribute is present with a non-empty value.
func (post Post) Has(field string) bool {
	value, ok := post[field]
	return ok && !isFalsy(value)
}

// UpdateFields returns every attribute except the identity field.
func (post Post) UpdateFields() Post {
	fields := Post{}
	for key, value := range post {
		if key == FieldPostID {
			continue
		}
		fields[key] = value
	}
	return fields
}

// CheckUpdatable rejects an update body that cannot correlate to a post or
// carries nothing to change.
func (post Post) CheckUpdatable() error {
	if !post.Has(FieldPostID) {
		return errs.NewValidationError(msgPostIDRequired)
	}

	if len(post.UpdateFields()) == 0 {
		return errs.NewValidationError(msgNoFieldsProvided)
	}

	return nil
}

func IsUpdatableField(field string) bool {
	for _, updatable := range UpdatableFields {
		if field == updatable {
			return true
		}
	}
	return false
}

// ---------------------------------------------------------------------------------//
// Helper functions
// --------------------------------------------------------------------------------//

func isFalsy(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case bool:
		return !v
	case json.Number:
		f, err := v.Float64()
		return err == nil && f == 0
	case float64:
		return v == 0
	case int:
		return v == 0
	}
	return false
}

func stringify(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return fmt.Sprint(value)
}
