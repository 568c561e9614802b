package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/hexforge/catan-go/docs"
	"github.com/hexforge/catan-go/internal/api/handler"
	apimiddleware "github.com/hexforge/catan-go/internal/api/middleware"
	"github.com/hexforge/catan-go/internal/metrics"
	"github.com/hexforge/catan-go/internal/middleware"
	"github.com/hexforge/catan-go/internal/services/catan"
	"github.com/hexforge/catan-go/internal/services/game"
	"github.com/hexforge/catan-go/internal/services/user"
	"github.com/hexforge/catan-go/internal/storage"
)

// RouterConfig carries the dependencies for the HTTP router
type RouterConfig struct {
	Logger  *slog.Logger
	Storage storage.Storage

	UserController  user.ControllerInterface
	GameController  game.ControllerInterface
	CatanController catan.ControllerInterface

	Metrics  *metrics.Collector
	Gatherer prometheus.Gatherer

	// RateLimiter applies to /api/v1 only; nil disables limiting
	RateLimiter *middleware.RateLimiter

	CORSAllowedOrigin string
	AppName           string
	Version           string
}

// NewRouter builds the full HTTP routing table with middleware attached
func NewRouter(cfg RouterConfig) *mux.Router {
	router := mux.NewRouter()

	router.Use(
		middleware.RequestID(),
		apimiddleware.JSONRecovery(cfg.Logger),
		middleware.Logging(cfg.Logger),
	)
	if cfg.Metrics != nil {
		router.Use(middleware.Metrics(cfg.Metrics))
	}
	if cfg.CORSAllowedOrigin != "" {
		router.Use(middleware.CORS(cfg.CORSAllowedOrigin))
	}

	// Preflight requests must match a route for the middleware chain to
	// run; the CORS middleware answers them before this handler fires.
	router.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	metaHandler := handler.NewMetaHandler(cfg.Storage, cfg.AppName, cfg.Version)
	router.HandleFunc("/", metaHandler.Root).Methods(http.MethodGet)
	router.HandleFunc("/health", metaHandler.Health).Methods(http.MethodGet)

	if cfg.Gatherer != nil {
		router.Handle("/metrics", metrics.Handler(cfg.Gatherer)).Methods(http.MethodGet)
	}

	router.PathPrefix("/docs/").Handler(httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	api := router.PathPrefix("/api/v1").Subrouter()
	if cfg.RateLimiter != nil {
		api.Use(cfg.RateLimiter.Middleware())
	}

	userHandler := handler.NewUserHandler(cfg.UserController)
	users := api.PathPrefix("/users").Subrouter()
	collection(users, userHandler.Create, http.MethodPost)
	collection(users, userHandler.List, http.MethodGet)
	users.HandleFunc("/{user_id}", userHandler.Get).Methods(http.MethodGet)

	gameHandler := handler.NewGameHandler(cfg.GameController)
	games := api.PathPrefix("/games").Subrouter()
	collection(games, gameHandler.Create, http.MethodPost)
	collection(games, gameHandler.List, http.MethodGet)
	games.HandleFunc("/{game_id}", gameHandler.Get).Methods(http.MethodGet)
	games.HandleFunc("/{game_id}", gameHandler.Update).Methods(http.MethodPatch)
	games.HandleFunc("/{game_id}/players/{player_id}", gameHandler.AddPlayer).Methods(http.MethodPost)

	catanHandler := handler.NewCatanHandler(cfg.CatanController)
	catanRoutes := api.PathPrefix("/catan").Subrouter()
	catanRoutes.HandleFunc("/start", catanHandler.Start).Methods(http.MethodPost)

	play := catanRoutes.PathPrefix("/{game_id}").Subrouter()
	play.HandleFunc("/state", catanHandler.State).Methods(http.MethodGet)
	play.HandleFunc("/roll-dice", catanHandler.RollDice).Methods(http.MethodPost)
	play.HandleFunc("/build-settlement", catanHandler.BuildSettlement).Methods(http.MethodPost)
	play.HandleFunc("/build-city", catanHandler.BuildCity).Methods(http.MethodPost)
	play.HandleFunc("/build-road", catanHandler.BuildRoad).Methods(http.MethodPost)
	play.HandleFunc("/initial-setup", catanHandler.InitialSetup).Methods(http.MethodPost)
	play.HandleFunc("/end-turn", catanHandler.EndTurn).Methods(http.MethodPost)
	play.HandleFunc("/move-robber", catanHandler.MoveRobber).Methods(http.MethodPost)
	play.HandleFunc("/trade-bank", catanHandler.TradeBank).Methods(http.MethodPost)
	play.HandleFunc("/trade-port", catanHandler.TradePort).Methods(http.MethodPost)
	play.HandleFunc("/create-trade-offer", catanHandler.CreateTradeOffer).Methods(http.MethodPost)
	play.HandleFunc("/accept-trade-offer", catanHandler.AcceptTradeOffer).Methods(http.MethodPost)
	play.HandleFunc("/buy-dev-card", catanHandler.BuyDevCard).Methods(http.MethodPost)
	play.HandleFunc("/play-dev-card", catanHandler.PlayDevCard).Methods(http.MethodPost)

	return router
}

// collection registers a handler on a prefix subrouter for both the bare
// and trailing-slash path forms.
func collection(r *mux.Router, h http.HandlerFunc, method string) {
	r.HandleFunc("", h).Methods(method)
	r.HandleFunc("/", h).Methods(method)
}
