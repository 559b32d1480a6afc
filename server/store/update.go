package store

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Daskott/postbook/server/errs"
	"github.com/Daskott/postbook/server/models"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Update is a ready-to-send SET expression with its placeholder bindings.
type Update struct {
	Expression string
	Names      map[string]string
	Values     map[string]types.AttributeValue
}

// UpdateBuilder collects attribute assignments for a single UpdateItem call.
// Only models.UpdatableFields may be set; anything else makes Build fail.
type UpdateBuilder struct {
	fields map[string]interface{}
	err    error
}

func NewUpdateBuilder() *UpdateBuilder {
	return &UpdateBuilder{fields: make(map[string]interface{})}
}

func (b *UpdateBuilder) Set(field string, value interface{}) *UpdateBuilder {
	if b.err != nil {
		return b
	}

	if field == models.FieldPostID {
		b.err = errs.NewValidationError(fmt.Sprintf("%s cannot be updated.", models.FieldPostID))
		return b
	}

	if !models.IsUpdatableField(field) {
		b.err = errs.NewValidationError(fmt.Sprintf("Unknown field: %s.", field))
		return b
	}

	b.fields[field] = value
	return b
}

// SetAll sets every field of post, in name order so the first unknown field
// reported is stable.
func (b *UpdateBuilder) SetAll(post models.Post) *UpdateBuilder {
	for _, field := range sortedKeys(post) {
		b.Set(field, post[field])
	}
	return b
}

// Build binds each field to a #keyN name placeholder and a :valueN value
// placeholder, so attribute names never collide with reserved words.
func (b *UpdateBuilder) Build() (*Update, error) {
	if b.err != nil {
		return nil, b.err
	}

	if len(b.fields) == 0 {
		return nil, errs.NewValidationError(msgNoFieldsProvided)
	}

	update := &Update{
		Names:  make(map[string]string, len(b.fields)),
		Values: make(map[string]types.AttributeValue, len(b.fields)),
	}

	assignments := []string{}
	for i, field := range sortedKeys(b.fields) {
		namePlaceholder := fmt.Sprintf("#key%d", i)
		valuePlaceholder := fmt.Sprintf(":value%d", i)

		value, err := toAttributeValue(b.fields[field])
		if err != nil {
			return nil, errs.NewValidationError(fmt.Sprintf("Invalid value for %s.", field))
		}

		update.Names[namePlaceholder] = field
		update.Values[valuePlaceholder] = value
		assignments = append(assignments, fmt.Sprintf("%s = %s", namePlaceholder, valuePlaceholder))
	}

	update.Expression = "SET " + strings.Join(assignments, ", ")
	return update, nil
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
