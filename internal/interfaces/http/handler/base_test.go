package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/storecore/backend/internal/domain/shared"
	"github.com/storecore/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHandleError(t *testing.T) {
	var h BaseHandler

	t.Run("currency gating maps to 422 and keeps the code", func(t *testing.T) {
		c, rec := testContext()

		h.HandleError(c, shared.NewCurrencyNotAvailableError("JPY"))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		resp := decodeResponse(t, rec)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "CURRENCY_NOT_AVAILABLE", resp.Error.Code)
		assert.Equal(t, `The currency "JPY" is not available in the current Channel`, resp.Error.Message)
	})

	t.Run("missing price maps to 422", func(t *testing.T) {
		c, rec := testContext()

		h.HandleError(c, shared.NewNoPriceForCurrencyError("GBP"))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		resp := decodeResponse(t, rec)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "NO_PRICE_FOR_CURRENCY", resp.Error.Code)
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		c, rec := testContext()

		h.HandleError(c, shared.ErrNotFound)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("duplicate maps to 409", func(t *testing.T) {
		c, rec := testContext()

		h.HandleError(c, shared.ErrAlreadyExists)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("wrapped domain errors are unwrapped", func(t *testing.T) {
		c, rec := testContext()

		h.HandleError(c, errorsJoin(shared.ErrNotFound))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unknown errors map to 500", func(t *testing.T) {
		c, rec := testContext()

		h.HandleError(c, errors.New("boom"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		resp := decodeResponse(t, rec)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeInternal, resp.Error.Code)
	})
}

func errorsJoin(err error) error {
	return &wrappedError{inner: err}
}

type wrappedError struct {
	inner error
}

func (e *wrappedError) Error() string { return "wrapped: " + e.inner.Error() }

func (e *wrappedError) Unwrap() error { return e.inner }
