package shared

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type decodeTarget struct {
	Name string `json:"name" validate:"required"`
}

func TestDecodeJSON(t *testing.T) {
	t.Run("Valid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"lingo"}`))

		var target decodeTarget
		require.NoError(t, DecodeJSON(req, &target))
		assert.Equal(t, "lingo", target.Name)
	})

	t.Run("Malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))

		var target decodeTarget
		assert.Error(t, DecodeJSON(req, &target))
	})
}

type selfValidating struct {
	err error
}

func (s selfValidating) Validate() error { return s.err }

func TestValidateRequest(t *testing.T) {
	t.Run("Struct tags", func(t *testing.T) {
		assert.Error(t, ValidateRequest(decodeTarget{}))
		assert.NoError(t, ValidateRequest(decodeTarget{Name: "lingo"}))
	})

	t.Run("Custom Validate method wins", func(t *testing.T) {
		wantErr := errors.New("custom validation failed")
		assert.ErrorIs(t, ValidateRequest(selfValidating{err: wantErr}), wantErr)
		assert.NoError(t, ValidateRequest(selfValidating{}))
	})
}
