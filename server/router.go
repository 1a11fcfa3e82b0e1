package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// TimetableRoutes is implemented by handlers.TimetableHandler.
type TimetableRoutes interface {
	GetTimetable(w http.ResponseWriter, r *http.Request)
	GetWeeks(w http.ResponseWriter, r *http.Request)
	GetCalendar(w http.ResponseWriter, r *http.Request)
	GetLoadChart(w http.ResponseWriter, r *http.Request)
	GetDump(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	timetableHandler TimetableRoutes
	router           *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	timetableHandler TimetableRoutes,
	router *mux.Router) *Router {
	return &Router{
		timetableHandler: timetableHandler,
		router:           router,
	}
}

func (r *Router) RegisterRoutes() {
	// optional ?name={group name} overrides the configured group name
	r.router.HandleFunc("/v1/groups/{groupID}/timetable", r.timetableHandler.GetTimetable).Methods("GET")
	r.router.HandleFunc("/v1/groups/{groupID}/timetable.ics", r.timetableHandler.GetCalendar).Methods("GET")
	r.router.HandleFunc("/v1/groups/{groupID}/weeks", r.timetableHandler.GetWeeks).Methods("GET")
	r.router.HandleFunc("/v1/groups/{groupID}/load", r.timetableHandler.GetLoadChart).Methods("GET")
	r.router.HandleFunc("/v1/groups/{groupID}/dump", r.timetableHandler.GetDump).Methods("GET")

	r.router.HandleFunc("/ping", r.timetableHandler.Ping).Methods("GET")
}
