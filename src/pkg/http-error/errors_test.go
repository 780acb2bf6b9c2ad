package httperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromStatus(t *testing.T) {
	cases := []struct {
		code int
		kind Kind
	}{
		{http.StatusUnauthorized, KindAuth},
		{http.StatusForbidden, KindAuth},
		{http.StatusNotFound, KindNotFound},
		{http.StatusConflict, KindConflict},
		{http.StatusInternalServerError, KindServer},
		{http.StatusBadGateway, KindServer},
		{http.StatusBadRequest, KindBadRequest},
		{http.StatusTeapot, KindBadRequest},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprint(tc.code), func(t *testing.T) {
			err := FromStatus(tc.code, "")
			assert.Equal(t, tc.kind, err.Kind)
			assert.Equal(t, tc.code, err.Code)
			assert.NotEmpty(t, err.Message)
		})
	}
}

func TestFromStatusKeepsServerMessage(t *testing.T) {
	err := FromStatus(http.StatusNotFound, "order 9 not found")
	assert.Equal(t, "order 9 not found", err.Error())
}

func TestErrorsIsMatchesKind(t *testing.T) {
	wrapped := fmt.Errorf("fetch: %w", NewNetwork(errors.New("dial tcp: refused")))

	assert.True(t, errors.Is(wrapped, ErrNetwork))
	assert.False(t, errors.Is(wrapped, ErrAuth))
	assert.Equal(t, KindNetwork, KindOf(wrapped))
	assert.Equal(t, Kind(""), KindOf(errors.New("plain")))
	assert.Contains(t, wrapped.Error(), "dial tcp: refused")
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusServiceUnavailable, NewNetwork(nil).HTTPStatus())
	assert.Equal(t, http.StatusUnauthorized, NewForbidden().HTTPStatus())
	assert.Equal(t, http.StatusBadGateway, NewInternalServerError().HTTPStatus())
	assert.Equal(t, http.StatusUnprocessableEntity, NewValidation().HTTPStatus())
	assert.Equal(t, http.StatusConflict, NewConflict().HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, (&Error{}).HTTPStatus())
}
