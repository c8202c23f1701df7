package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseEnvelope(t *testing.T) {
	t.Run("success keeps data", func(t *testing.T) {
		rec := httptest.NewRecorder()
		ResponseSuccess(rec, "Tables retrieved", []int{})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"status":true,"message":"Tables retrieved","data":[]}`, rec.Body.String())
	})

	t.Run("bad request carries errors", func(t *testing.T) {
		rec := httptest.NewRecorder()
		ResponseBadRequest(rec, "Validation failed", map[string]string{"status": "Must be one of: PENDING"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t,
			`{"status":false,"message":"Validation failed","data":null,"errors":{"status":"Must be one of: PENDING"}}`,
			rec.Body.String())
	})

	t.Run("conflict", func(t *testing.T) {
		rec := httptest.NewRecorder()
		ResponseConflict(rec, "restaurant with email owner@sate.id already exists")

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}
