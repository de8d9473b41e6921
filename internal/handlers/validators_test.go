package handlers

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type taggedRequest struct {
	Type string `validate:"required,itemtype"`
	Kind string `validate:"required,budgetkind"`
}

func TestRegisterValidations(t *testing.T) {
	v := validator.New()
	require.NoError(t, registerValidations(v))

	assert.NoError(t, v.Struct(taggedRequest{Type: "expense", Kind: "actual"}))
	assert.Error(t, v.Struct(taggedRequest{Type: "asset", Kind: "budget"}))
	assert.Error(t, v.Struct(taggedRequest{Type: "REVENUE", Kind: "plan"}))
}

func TestRegisterValidators_GinEngine(t *testing.T) {
	require.NoError(t, RegisterValidators())
	assert.NoError(t, RegisterValidators(), "repeated calls return the first result")
}
