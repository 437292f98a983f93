package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"reelcraft/internal/config"
)

func newTestServer() *Server {
	gin.SetMode(gin.TestMode)
	return New(&config.Config{Family: "default", FPS: 30})
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestHandleBuildTimeline(t *testing.T) {
	srv := newTestServer()

	body := `{
		"title": "API demo",
		"scenes": [
			{"id": 1, "layout": "bullet_list", "durationSeconds": 5,
			 "narration": "One. Two."},
			{"id": 2, "layout": "unknown_xyz", "durationSeconds": 3.2}
		]
	}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/timeline", strings.NewReader(body))
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp BuildResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.JobID == "" {
		t.Error("missing job id")
	}

	scenes := resp.Manifest.Scenes
	if len(scenes) != 2 {
		t.Fatalf("expected 2 scenes, got %d", len(scenes))
	}
	if scenes[0].StartFrame != 0 || scenes[0].DurationFrames != 150 {
		t.Errorf("scene 0 window wrong: %+v", scenes[0])
	}
	if scenes[1].StartFrame != 150 || scenes[1].DurationFrames != 96 {
		t.Errorf("scene 1 window wrong: %+v", scenes[1])
	}
	if scenes[1].Layout != "text_narration" {
		t.Errorf("unknown layout not redirected: %q", scenes[1].Layout)
	}
}

func TestHandleBuildTimelineFamilyQuery(t *testing.T) {
	srv := newTestServer()

	body := `{"scenes": [{"id": 1, "layout": "nope", "durationSeconds": 1}]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/timeline?family=newspaper&fps=24", strings.NewReader(body))
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp BuildResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Manifest.Family != "newspaper" || resp.Manifest.FPS != 24 {
		t.Errorf("query params ignored: family=%q fps=%d", resp.Manifest.Family, resp.Manifest.FPS)
	}
	if resp.Manifest.Scenes[0].Layout != "article_lead" {
		t.Errorf("newspaper fallback not applied: %q", resp.Manifest.Scenes[0].Layout)
	}
	if resp.Manifest.Scenes[0].DurationFrames != 24 {
		t.Errorf("fps override not applied: %d", resp.Manifest.Scenes[0].DurationFrames)
	}
}

func TestHandleBuildTimelineBadBody(t *testing.T) {
	srv := newTestServer()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/timeline", strings.NewReader("not json"))
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
