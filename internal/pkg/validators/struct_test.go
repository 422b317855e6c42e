//go:build unit
// +build unit

package validators

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shirt struct {
	Size  string `validate:"required,size"`
	Owner string `validate:"omitempty,min=2"`
}

func TestValidateStruct_CustomTag(t *testing.T) {
	custom := map[string]validator.Func{"size": OneOf("S", "M", "L")}

	require.NoError(t, ValidateStruct(&shirt{Size: "M"}, custom))

	err := ValidateStruct(&shirt{Size: "XL"}, custom)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Field: Size, Tag: size")
}

func TestValidateStruct_BuiltinTags(t *testing.T) {
	custom := map[string]validator.Func{"size": OneOf("S")}

	err := ValidateStruct(&shirt{Size: "S", Owner: "x"}, custom)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Tag: min")
}
