package server

import (
	"encoding/json"
	"image/png"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testServer() *Server {
	return NewServer(0, log.New(io.Discard, "", 0))
}

func TestHandleHealth(t *testing.T) {
	s := testServer()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	s.handleHealth(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %q, want ok", body["status"])
	}
}

func TestHandleScenes(t *testing.T) {
	s := testServer()
	req := httptest.NewRequest(http.MethodGet, "/api/scenes", nil)
	rec := httptest.NewRecorder()
	s.handleScenes(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string][]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body["scenes"]) == 0 {
		t.Error("scene list is empty")
	}

	rec = httptest.NewRecorder()
	s.handleScenes(rec, httptest.NewRequest(http.MethodPost, "/api/scenes", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST status = %d, want 405", rec.Code)
	}
}

func TestHandleRender(t *testing.T) {
	s := testServer()

	t.Run("returns a decodable png", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/render?scene=default&width=16&height=12&depth=2", nil)
		rec := httptest.NewRecorder()
		s.handleRender(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body %q", rec.Code, rec.Body.String())
		}
		if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
			t.Errorf("content type = %q", ct)
		}
		img, err := png.Decode(rec.Body)
		if err != nil {
			t.Fatalf("decode png: %v", err)
		}
		if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 12 {
			t.Errorf("image bounds = %v, want 16x12", img.Bounds())
		}
	})

	t.Run("rejects bad requests", func(t *testing.T) {
		cases := []struct {
			name string
			url  string
		}{
			{"unknown scene", "/api/render?scene=nope&width=16&height=12"},
			{"bad width", "/api/render?width=abc"},
			{"zero height", "/api/render?width=16&height=0"},
			{"oversize", "/api/render?width=100000&height=12"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				rec := httptest.NewRecorder()
				s.handleRender(rec, httptest.NewRequest(http.MethodGet, tc.url, nil))
				if rec.Code != http.StatusBadRequest {
					t.Errorf("status = %d, want 400", rec.Code)
				}
			})
		}
	})

	t.Run("rejects non-GET", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.handleRender(rec, httptest.NewRequest(http.MethodPost, "/api/render", nil))
		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("status = %d, want 405", rec.Code)
		}
	})
}
