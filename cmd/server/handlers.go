package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/coder/websocket"

	"github.com/me-learn/tracker/internal/catalog"
	"github.com/me-learn/tracker/internal/notify"
	"github.com/me-learn/tracker/internal/report"
	"github.com/me-learn/tracker/internal/tracker"
)

type server struct {
	engine *tracker.Engine
	hub    *notify.Hub
	health func(context.Context) error
}

// newMux creates the HTTP router. health may be nil for backends without a
// connection to check.
func newMux(engine *tracker.Engine, hub *notify.Hub, health func(context.Context) error) *http.ServeMux {
	s := &server{engine: engine, hub: hub, health: health}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	mux.HandleFunc("GET /readyz", s.handleReadyz)
	mux.HandleFunc("POST /api/login", s.handleLogin)
	mux.HandleFunc("GET /api/profile", s.handleProfile)
	mux.HandleFunc("GET /api/courses", s.handleCourses)
	mux.HandleFunc("GET /api/courses/{id}", s.handleCourse)
	mux.HandleFunc("POST /api/courses/{id}/lessons/{index}/view", s.handleViewLesson)
	mux.HandleFunc("POST /api/courses/{id}/quiz", s.handleSubmitQuiz)
	mux.HandleFunc("POST /api/courses/{id}/complete", s.handleManualComplete)
	mux.HandleFunc("GET /api/leaderboard", s.handleLeaderboard)
	mux.HandleFunc("GET /api/leaderboard/export", s.handleLeaderboardExport)
	mux.HandleFunc("GET /api/events", s.handleEvents)
	return mux
}

func (s *server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	if s.health != nil {
		if err := s.health(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (s *server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.engine.Login(r.Context(), req.Username); err != nil {
		s.writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) handleProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := s.engine.Profile(r.Context())
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *server) handleCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := s.engine.Courses(r.Context())
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, courses)
}

func (s *server) handleCourse(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	courses, err := s.engine.Courses(r.Context())
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	course, found := catalog.FindByID(courses, id)
	if !found {
		writeError(w, http.StatusNotFound, "course not found")
		return
	}
	writeJSON(w, http.StatusOK, course)
}

func (s *server) handleViewLesson(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}
	index, ok := pathInt(w, r, "index")
	if !ok {
		return
	}

	if err := s.engine.ViewLesson(r.Context(), id, index); err != nil {
		s.writeEngineError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *server) handleSubmitQuiz(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	var req struct {
		Answers []*int `json:"answers"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.engine.SubmitQuiz(r.Context(), id, req.Answers)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *server) handleManualComplete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	completed, err := s.engine.ManualComplete(r.Context(), id)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"completed": completed})
}

func (s *server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := s.engine.Leaderboard(r.Context())
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *server) handleLeaderboardExport(w http.ResponseWriter, r *http.Request) {
	entries, err := s.engine.Leaderboard(r.Context())
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	courses, err := s.engine.Courses(r.Context())
	if err != nil {
		s.writeEngineError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := report.WriteWorkbook(&buf, entries, courses); err != nil {
		slog.Error("failed to build workbook", "error", err)
		writeError(w, http.StatusInternalServerError, "export failed")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="leaderboard.xlsx"`)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// handleEvents streams advisory engine events (level-ups, badges) over a
// websocket, one JSON object per message.
func (s *server) handleEvents(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		slog.Warn("websocket accept failed", "error", err)
		return
	}
	defer conn.CloseNow()

	events, cancel := s.hub.Subscribe()
	defer cancel()

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			conn.Close(websocket.StatusNormalClosure, "")
			return
		case event, open := <-events:
			if !open {
				conn.Close(websocket.StatusNormalClosure, "")
				return
			}
			data, err := json.Marshal(event)
			if err != nil {
				slog.Warn("failed to encode event", "type", event.Type, "error", err)
				continue
			}
			if err := conn.Write(ctx, websocket.MessageText, data); err != nil {
				return
			}
		}
	}
}

// writeEngineError maps engine errors to HTTP: validation errors are 422 with
// the reason, everything else is a 500.
func (s *server) writeEngineError(w http.ResponseWriter, err error) {
	var verr *tracker.ValidationError
	if errors.As(err, &verr) {
		writeError(w, http.StatusUnprocessableEntity, verr.Reason)
		return
	}
	slog.Error("engine error", "error", err)
	writeError(w, http.StatusInternalServerError, "internal error")
}

func pathInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	v, err := strconv.Atoi(r.PathValue(name))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return v, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
