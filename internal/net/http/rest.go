// Package http builds the arena-server's REST surface: room listing, weapon
// customization data, health, and metrics.
package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"arena-server/internal/telemetry"
	"arena-server/room"
)

// RoomInfo summarizes one live room for the /api/games listing.
type RoomInfo struct {
	ID      string `json:"id"`
	Players int    `json:"players"`
	Phase   string `json:"phase"`
}

// RoomLister is implemented by whatever owns the set of live rooms.
type RoomLister interface {
	ListRooms() []RoomInfo
}

// RouterConfig bundles the router's dependencies.
type RouterConfig struct {
	Rooms           RoomLister
	WS              http.Handler
	RateLimiter     *IPRateLimiter
	RateLimitConfig *RateLimitConfig
	CORSOrigins     []string
}

// NewRouter builds the chi router. It has no side effects beyond
// constructing a rate limiter if one wasn't supplied, so it's safe to use
// with httptest.NewServer.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	limiter := cfg.RateLimiter
	if limiter == nil {
		rlCfg := DefaultRateLimitConfig
		if cfg.RateLimitConfig != nil {
			rlCfg = *cfg.RateLimitConfig
		}
		limiter = NewIPRateLimiter(rlCfg)
	}
	r.Use(limiter.Middleware)

	origins := cfg.CORSOrigins
	if origins == nil {
		origins = []string{"http://localhost:*", "http://127.0.0.1:*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/games", handleListGames(cfg.Rooms))
		r.Get("/weapon-customization", handleWeaponCustomization)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", telemetry.Handler())

	if cfg.WS != nil {
		r.Get("/ws", cfg.WS.ServeHTTP)
	}

	return r
}

func handleListGames(rooms RoomLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var list []RoomInfo
		if rooms != nil {
			list = rooms.ListRooms()
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(list)
	}
}

func handleWeaponCustomization(w http.ResponseWriter, r *http.Request) {
	type attributeBudget struct {
		Name   string `json:"name"`
		Points int    `json:"points"`
		Valid  bool   `json:"valid"`
	}
	out := make([]attributeBudget, 0, len(room.Presets))
	for _, preset := range room.Presets {
		out = append(out, attributeBudget{
			Name:   preset.Name,
			Points: preset.TotalPoints(),
			Valid:  preset.Valid(),
		})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}
