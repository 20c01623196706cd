// Package api exposes a read-only HTTP viewer over a set of loaded lines:
// line metadata and axes as JSON, cross-section PNGs and a map view. The
// line set is built once at startup and never mutated, so handlers need no
// locking.
package api

import (
	"fmt"
	"log"
	"net/http"
	"sort"

	"github.com/bytedance/sonic"

	"github.com/mhbaharuddin/seis2d/internal/render"
	"github.com/mhbaharuddin/seis2d/internal/seismic"
)

// Server serves an owned, immutable map of loaded lines.
type Server struct {
	lines map[string]*seismic.Line
	mux   *http.ServeMux
}

// NewServer wraps the given line set. The caller hands over ownership of
// the map; it must not be mutated afterwards.
func NewServer(lines map[string]*seismic.Line) *Server {
	s := &Server{lines: lines, mux: http.NewServeMux()}
	s.mux.HandleFunc("/api/lines", s.handleLines)
	s.mux.HandleFunc("/api/line", s.handleLine)
	s.mux.HandleFunc("/api/line/section.png", s.handleSection)
	s.mux.HandleFunc("/api/map", s.handleMap)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleLines lists the metadata of every loaded line, sorted by name.
func (s *Server) handleLines(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed; use GET")
		return
	}

	names := make([]string, 0, len(s.lines))
	for name := range s.lines {
		names = append(names, name)
	}
	sort.Strings(names)

	metas := make([]seismic.LineMetadata, 0, len(names))
	for _, name := range names {
		metas = append(metas, s.lines[name].Metadata)
	}
	s.writeJSON(w, metas)
}

// handleLine returns one line's metadata and axes (?name=...). Sample
// amplitudes are deliberately excluded from the JSON view; they are served
// as rendered sections instead.
func (s *Server) handleLine(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed; use GET")
		return
	}
	line, ok := s.lines[r.URL.Query().Get("name")]
	if !ok {
		s.writeJSONError(w, http.StatusNotFound, "no such line")
		return
	}
	s.writeJSON(w, line)
}

// handleSection renders one line's cross-section as PNG (?name=...).
func (s *Server) handleSection(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed; use GET")
		return
	}
	line, ok := s.lines[r.URL.Query().Get("name")]
	if !ok {
		s.writeJSONError(w, http.StatusNotFound, "no such line")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if err := render.WriteSection(line, w); err != nil {
		// Headers are already out; all we can do is log.
		log.Printf("api: render section %s: %v", line.Metadata.Name, err)
	}
}

// handleMap renders the map view of all loaded lines as HTML.
func (s *Server) handleMap(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed; use GET")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render.Map(s.lines, w); err != nil {
		log.Printf("api: render map: %v", err)
	}
}

// writeJSON writes a JSON response body.
func (s *Server) writeJSON(w http.ResponseWriter, v interface{}) {
	data, err := sonic.Marshal(v)
	if err != nil {
		s.writeJSONError(w, http.StatusInternalServerError, fmt.Sprintf("marshal response: %v", err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

// writeJSONError writes a JSON error response.
func (s *Server) writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	data, _ := sonic.Marshal(map[string]string{"error": message})
	_, _ = w.Write(data)
}
