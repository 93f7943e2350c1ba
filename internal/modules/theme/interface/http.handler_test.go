package transport

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"dinesync/internal/modules/theme/application/usecase"
	"dinesync/internal/modules/theme/infrastructure"
)

func TestThemeRoutes(t *testing.T) {
	store := infrastructure.NewFileStore(filepath.Join(t.TempDir(), "theme.json"))
	prefs, err := usecase.Init(store, "light")
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	e := echo.New()
	NewHandler(prefs).Register(e.Group("/api"))

	steps := []struct {
		name   string
		method string
		body   string
		status int
		theme  string
	}{
		{name: "initial", method: http.MethodGet, status: http.StatusOK, theme: "light"},
		{name: "toggle", method: http.MethodPost, status: http.StatusOK, theme: "dark"},
		{name: "set light", method: http.MethodPut, body: `{"theme":"Light"}`, status: http.StatusOK, theme: "light"},
		{name: "set unknown", method: http.MethodPut, body: `{"theme":"neon"}`, status: http.StatusBadRequest},
		{name: "unchanged", method: http.MethodGet, status: http.StatusOK, theme: "light"},
	}

	for _, step := range steps {
		path := "/api/theme"
		if step.method == http.MethodPost {
			path = "/api/theme/toggle"
		}
		req := httptest.NewRequest(step.method, path, strings.NewReader(step.body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		if rec.Code != step.status {
			t.Fatalf("%s: expected %d, got %d: %s", step.name, step.status, rec.Code, rec.Body.String())
		}
		if step.theme == "" {
			continue
		}
		var body themeBody
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: decode: %v", step.name, err)
		}
		if string(body.Theme) != step.theme || body.Dark != (step.theme == "dark") {
			t.Fatalf("%s: unexpected body %+v", step.name, body)
		}
	}

	persisted, ok, err := store.Load()
	if err != nil || !ok || persisted != "light" {
		t.Fatalf("expected light persisted, got %q ok=%v err=%v", persisted, ok, err)
	}
}
