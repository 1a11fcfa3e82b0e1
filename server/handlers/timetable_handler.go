package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"timetable-server/dao/redis"
	"timetable-server/exporter"
	"timetable-server/models"
	"timetable-server/render"
	"timetable-server/schedule"
	services "timetable-server/service"
	"timetable-server/util"
)

const (
	GROUP_ID_PATH_VAR = "groupID"
	NAME_QUERY_ARG    = "name"
)

// TimetableBuilder is the part of the timetable service the handler needs.
type TimetableBuilder interface {
	BuildTimetable(ctx context.Context, group models.Group) (*models.Timetable, error)
	GetDump(groupID string) (*models.Timetable, error)
}

type TimetableHandler struct {
	timetableService TimetableBuilder
	renderer         render.Renderer
	groupName        func(groupID string) string
}

func NewTimetableHandler(
	timetableService TimetableBuilder,
	renderer render.Renderer,
	groupName func(groupID string) string) *TimetableHandler {
	return &TimetableHandler{
		timetableService: timetableService,
		renderer:         renderer,
		groupName:        groupName,
	}
}

// GetTimetable handles GET /v1/groups/{groupID}/timetable and writes the HTML page.
func (h *TimetableHandler) GetTimetable(w http.ResponseWriter, r *http.Request) {
	t, ok := h.build(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, t.GroupName, t.Weeks); err != nil {
		log.Println("[TimetableHandler] Error rendering timetable:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// GetWeeks handles GET /v1/groups/{groupID}/weeks and writes the timetable as JSON.
func (h *TimetableHandler) GetWeeks(w http.ResponseWriter, r *http.Request) {
	t, ok := h.build(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// GetCalendar handles GET /v1/groups/{groupID}/timetable.ics.
func (h *TimetableHandler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	t, ok := h.build(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := exporter.GenerateICS(t, &buf); err != nil {
		log.Println("[TimetableHandler] Error generating calendar:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// GetLoadChart handles GET /v1/groups/{groupID}/load and writes the lessons-per-day chart.
func (h *TimetableHandler) GetLoadChart(w http.ResponseWriter, r *http.Request) {
	t, ok := h.build(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := util.PlotLessonLoad(&buf, t); err != nil {
		log.Println("[TimetableHandler] Error plotting lesson load:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// GetDump handles GET /v1/groups/{groupID}/dump and returns the last stored timetable.
func (h *TimetableHandler) GetDump(w http.ResponseWriter, r *http.Request) {
	groupID := mux.Vars(r)[GROUP_ID_PATH_VAR]
	t, err := h.timetableService.GetDump(groupID)
	if errors.Is(err, redis.ErrDumpNotFound) {
		http.Error(w, "No dump for group "+groupID, http.StatusNotFound)
		return
	}
	if err != nil {
		log.Println("[TimetableHandler] Error loading dump:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// Ping handles GET /ping
func (h *TimetableHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}

func (h *TimetableHandler) build(w http.ResponseWriter, r *http.Request) (*models.Timetable, bool) {
	groupID := mux.Vars(r)[GROUP_ID_PATH_VAR]
	name := r.URL.Query().Get(NAME_QUERY_ARG)
	if name == "" {
		name = h.groupName(groupID)
	}

	t, err := h.timetableService.BuildTimetable(r.Context(), models.Group{ID: groupID, Name: name})
	if err != nil {
		writeBuildError(w, groupID, err)
		return nil, false
	}
	return t, true
}

func writeBuildError(w http.ResponseWriter, groupID string, err error) {
	log.Printf("[TimetableHandler] Error building timetable for group_id=%s: %v", groupID, err)

	var fetchErr *services.FetchError
	var parseErr *schedule.ParseError
	var dateErr *schedule.DateParseError
	switch {
	case errors.As(err, &fetchErr):
		http.Error(w, "Timetable portal unavailable", http.StatusBadGateway)
	case errors.Is(err, schedule.ErrEmptyInput):
		http.Error(w, "No lessons for group "+groupID, http.StatusNotFound)
	case errors.As(err, &parseErr), errors.As(err, &dateErr):
		http.Error(w, "Invalid timetable data: "+err.Error(), http.StatusUnprocessableEntity)
	default:
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Println("[TimetableHandler] Error encoding response:", err)
	}
}
