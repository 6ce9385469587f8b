package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/BrandishItemSearch/internal/item"
	"github.com/osse101/BrandishItemSearch/internal/session"
)

func TestHandleHealthz(t *testing.T) {
	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()

	handler := HandleHealthz()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"status":"ok"}`+"\n", w.Body.String())
}

func TestHandleReadyz(t *testing.T) {
	t.Run("Catalog Loaded - Success", func(t *testing.T) {
		checker := &fakeCatalog{catalog: item.Empty(), status: session.Status{Attempted: true, Loaded: true}}

		req := httptest.NewRequest("GET", "/readyz", nil)
		w := httptest.NewRecorder()

		HandleReadyz(checker).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"ok"`)
	})

	t.Run("Not Loaded Yet", func(t *testing.T) {
		checker := &fakeCatalog{catalog: item.Empty()}

		req := httptest.NewRequest("GET", "/readyz", nil)
		w := httptest.NewRecorder()

		HandleReadyz(checker).ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"unavailable"`)
		assert.Contains(t, w.Body.String(), ErrMsgCatalogNotLoaded)
	})

	t.Run("Load Failed", func(t *testing.T) {
		checker := &fakeCatalog{catalog: item.Empty(), status: session.Status{
			Attempted: true,
			Error:     session.UserMsgLoadFailed,
		}}

		req := httptest.NewRequest("GET", "/readyz", nil)
		w := httptest.NewRecorder()

		HandleReadyz(checker).ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), session.UserMsgLoadFailed)
	})
}
