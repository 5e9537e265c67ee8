package respond

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"success"}`, rec.Body.String())
}

func TestError(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, http.StatusConflict, "Email exists")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"status":"error","message":"Email exists"}`, rec.Body.String())
}
