package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"BlackjackOdds/internal/engine"
	"BlackjackOdds/internal/model"
	"BlackjackOdds/internal/report"
)

// TableSource yields the most recent sweep, or nil before the first one.
type TableSource interface {
	Latest() *model.Table
}

type HandlerDeps struct {
	Tables    TableSource
	Precision int
}

// Handler serves single-cell queries and the latest sweep.
type Handler struct {
	tables    TableSource
	precision int
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{tables: deps.Tables, precision: deps.Precision}
}

// optionsResponse is the JSON shape of one cell, push included.
type optionsResponse struct {
	HandScore    int     `json:"hand_score"`
	DealerUpcard int     `json:"dealer_upcard"`
	StandWin     float64 `json:"stand_win"`
	StandLoss    float64 `json:"stand_loss"`
	StandPush    float64 `json:"stand_push"`
	HitWin       float64 `json:"hit_win"`
	HitLoss      float64 `json:"hit_loss"`
	HitPush      float64 `json:"hit_push"`
	OptWin       float64 `json:"opt_win"`
	OptLoss      float64 `json:"opt_loss"`
	OptPush      float64 `json:"opt_push"`
	BestAction   string  `json:"best_action"`
}

func toResponse(o model.Options) optionsResponse {
	return optionsResponse{
		HandScore:    o.HandScore,
		DealerUpcard: o.DealerUpcard,
		StandWin:     o.StandWin,
		StandLoss:    o.StandLoss,
		StandPush:    o.StandPush(),
		HitWin:       o.HitWin,
		HitLoss:      o.HitLoss,
		HitPush:      o.HitPush(),
		OptWin:       o.OptWin,
		OptLoss:      o.OptLoss,
		OptPush:      o.OptPush(),
		BestAction:   string(o.BestAction),
	}
}

// Options answers GET /options?hand=H&upcard=U.
func (h *Handler) Options(w http.ResponseWriter, r *http.Request) {
	hand, err := strconv.Atoi(r.URL.Query().Get("hand"))
	if err != nil {
		http.Error(w, "hand must be an integer", http.StatusBadRequest)
		return
	}
	upcard, err := strconv.Atoi(r.URL.Query().Get("upcard"))
	if err != nil {
		http.Error(w, "upcard must be an integer", http.StatusBadRequest)
		return
	}

	o := engine.ComputeOptions(hand, upcard)
	if !o.Valid() {
		http.Error(w, "upcard must be between 1 and 10 and hand between 0 and 31", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, toResponse(o))
}

// TableCSV answers GET /table.csv with the latest sweep.
func (h *Handler) TableCSV(w http.ResponseWriter, r *http.Request) {
	t := h.tables.Latest()
	if t == nil {
		http.Error(w, "no sweep has completed yet", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	if err := report.WriteCSV(w, t, h.precision); err != nil {
		log.Printf("[ERROR] write csv response: %v", err)
	}
}

// Chart answers GET /chart with the latest strategy chart.
func (h *Handler) Chart(w http.ResponseWriter, r *http.Request) {
	t := h.tables.Latest()
	if t == nil {
		http.Error(w, "no sweep has completed yet", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(report.FormatChart(t)))
}

// NewRouter wires the handler's routes.
func NewRouter(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         60 * 15,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Get("/options", h.Options)
	r.Get("/table.csv", h.TableCSV)
	r.Get("/chart", h.Chart)
	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[ERROR] encode response: %v", err)
	}
}
