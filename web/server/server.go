// Package server exposes the ray tracer over HTTP: a render endpoint that
// streams back a finished PNG and a listing of the available scenes.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/styxx3542/ray-tracer/pkg/renderer"
	"github.com/styxx3542/ray-tracer/pkg/scene"
)

// Renders above this size are refused to keep request latency bounded.
const maxImageDimension = 1920

// Server handles web requests for the ray tracer.
type Server struct {
	port   int
	logger *log.Logger
	srv    *http.Server
}

// NewServer creates a web server listening on the given port.
func NewServer(port int, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{port: port, logger: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/health", s.handleHealth)

	s.srv = &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 5 * time.Minute,
	}
	return s
}

// Start runs the server until it is shut down or fails.
func (s *Server) Start() error {
	s.logger.Printf("Starting web server on http://localhost:%d", s.port)
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the server, waiting for in-flight renders up to the
// context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// handleHealth provides a simple health check endpoint.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleScenes lists the available scene names as JSON.
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string][]string{"scenes": scene.Names()})
}

// handleRender renders a scene and returns the image as PNG. Query
// parameters: scene (name, default "default"), width, height, depth.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	name := r.URL.Query().Get("scene")
	if name == "" {
		name = "default"
	}
	width, err := intParam(r, "width", 400)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	height, err := intParam(r, "height", 300)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	depth, err := intParam(r, "depth", 5)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if width <= 0 || height <= 0 || width > maxImageDimension || height > maxImageDimension {
		http.Error(w, fmt.Sprintf("dimensions must be between 1 and %d", maxImageDimension), http.StatusBadRequest)
		return
	}

	sc, err := scene.Build(name, width, height)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if depth > 0 {
		sc.World.MaxDepth = depth
	}

	start := time.Now()
	canvas := renderer.RenderParallel(sc.Camera, sc.World, 0, renderer.NopLogger)
	s.logger.Printf("rendered scene %q at %dx%d in %v", name, width, height, time.Since(start))

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, canvas.ToImage()); err != nil {
		s.logger.Printf("encode png: %v", err)
	}
}

// intParam reads an integer query parameter, falling back to def when the
// parameter is absent.
func intParam(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return v, nil
}
