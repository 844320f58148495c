package render_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"moviehub/pkg/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newEngine(t *testing.T) *render.Engine {
	t.Helper()

	engine, err := render.NewEngine(zap.NewNop())
	require.NoError(t, err)
	return engine
}

func TestWantsJSON(t *testing.T) {
	plain := httptest.NewRequest(http.MethodGet, "/discover", nil)
	assert.False(t, render.WantsJSON(plain))

	accepts := httptest.NewRequest(http.MethodGet, "/discover", nil)
	accepts.Header.Set("Accept", "application/json")
	assert.True(t, render.WantsJSON(accepts))

	sends := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("{}"))
	sends.Header.Set("Content-Type", "application/json")
	assert.True(t, render.WantsJSON(sends))

	form := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("username=alice"))
	form.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	assert.False(t, render.WantsJSON(form))
}

func TestResponder_Page_JSON(t *testing.T) {
	engine := newEngine(t)

	r := httptest.NewRequest(http.MethodGet, "/login", nil)
	r.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()

	engine.For(r).Page(w, http.StatusOK, "login.html", "Welcome back", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["status"])
	assert.Equal(t, "Welcome back", body["message"])
}

func TestResponder_Page_HTML(t *testing.T) {
	engine := newEngine(t)

	r := httptest.NewRequest(http.MethodGet, "/login", nil)
	w := httptest.NewRecorder()

	engine.For(r).Page(w, http.StatusOK, "login.html", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "<form")
}

func TestResponder_Error(t *testing.T) {
	engine := newEngine(t)

	r := httptest.NewRequest(http.MethodGet, "/profile", nil)
	r.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()

	engine.For(r).Error(w, http.StatusBadRequest, "Something went wrong", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["status"])

	htmlReq := httptest.NewRequest(http.MethodGet, "/profile", nil)
	htmlRec := httptest.NewRecorder()
	engine.For(htmlReq).Error(htmlRec, http.StatusBadRequest, "Something went wrong", nil)

	assert.Equal(t, http.StatusBadRequest, htmlRec.Code)
	assert.Contains(t, htmlRec.Body.String(), "Something went wrong")
}

func TestResponder_Redirect(t *testing.T) {
	engine := newEngine(t)

	htmlReq := httptest.NewRequest(http.MethodPost, "/movies/add", nil)
	htmlRec := httptest.NewRecorder()
	engine.For(htmlReq).Redirect(htmlRec, htmlReq, "/discover", http.StatusOK, "Added to watchlist")

	assert.Equal(t, http.StatusSeeOther, htmlRec.Code)
	assert.Equal(t, "/discover", htmlRec.Header().Get("Location"))

	jsonReq := httptest.NewRequest(http.MethodPost, "/movies/add", nil)
	jsonReq.Header.Set("Accept", "application/json")
	jsonRec := httptest.NewRecorder()
	engine.For(jsonReq).Redirect(jsonRec, jsonReq, "/discover", http.StatusOK, "Added to watchlist")

	assert.Equal(t, http.StatusOK, jsonRec.Code)
	assert.Empty(t, jsonRec.Header().Get("Location"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(jsonRec.Body.Bytes(), &body))
	assert.Equal(t, "Added to watchlist", body["message"])
}
