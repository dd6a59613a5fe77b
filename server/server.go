package server

import (
	"crypto/sha256"
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/benjaminmd/ezplot/env"
	"github.com/benjaminmd/ezplot/store"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

func basicAuthWith(refLogin, refPassword string) mux.MiddlewareFunc {
	// source https://www.alexedwards.net/blog/basic-authentication-in-go
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			login, password, ok := r.BasicAuth()
			if ok {
				// Calculate SHA-256 hashes for the provided and expected usernames and passwords.
				loginHash := sha256.Sum256([]byte(login))
				passwordHash := sha256.Sum256([]byte(password))
				expectedLoginHash := sha256.Sum256([]byte(refLogin))
				expectedPasswordHash := sha256.Sum256([]byte(refPassword))

				loginMatch := (subtle.ConstantTimeCompare(loginHash[:], expectedLoginHash[:]) == 1)
				passwordMatch := (subtle.ConstantTimeCompare(passwordHash[:], expectedPasswordHash[:]) == 1)

				if loginMatch && passwordMatch {
					next.ServeHTTP(w, r)
					return
				}
			}

			w.Header().Set("WWW-Authenticate", `Basic realm="restricted", charset="UTF-8"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
		})
	}
}

func limitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, config.MaxBodyBytes)
		next.ServeHTTP(w, r)
	})
}

func pruneLoop(ttl time.Duration) {
	ticker := time.NewTicker(ttl / 2)
	for range ticker.C {
		if count := store.Prune(ttl); count > 0 {
			log.Info().Str("context", "server").Int("count", count).Msg("renders_pruned")
		}
	}
}

// API

// NewRouter serves the API under webPrefix, behind basic auth when login is
// not empty
func NewRouter(webPrefix, login, password string) *mux.Router {
	router := mux.NewRouter()
	api := router
	if webPrefix != "" {
		api = router.PathPrefix(webPrefix).Subrouter()
	}
	api.Use(limitBody)
	if login != "" {
		api.Use(basicAuthWith(login, password))
	}

	api.HandleFunc("/layout", layoutHandler).Methods(http.MethodPost)
	api.HandleFunc("/render", renderHandler(webPrefix)).Methods(http.MethodPost)
	api.HandleFunc("/plots/{id}", getPlotHandler).Methods(http.MethodGet)
	api.HandleFunc("/plots/{id}", deletePlotHandler).Methods(http.MethodDelete)
	api.HandleFunc("/colormaps", colorMapsHandler).Methods(http.MethodGet)
	return router
}

func ListenAndServe(cert, key string) {
	router := NewRouter(env.WebPrefix, env.Login, env.Password)

	server := &http.Server{
		Handler:      router,
		Addr:         ":" + env.Port,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	if config.RenderTTLMinutes > 0 {
		go pruneLoop(time.Duration(config.RenderTTLMinutes) * time.Minute)
	}

	// start HTTP server
	if key != "" && cert != "" {
		log.Info().Str("context", "init").Str("port", env.Port).Msg("https_server_started")
		log.Fatal().Err(server.ListenAndServeTLS(cert, key)).Msg("app_crashed") // blocking
	} else {
		log.Info().Str("context", "init").Str("port", env.Port).Msg("http_server_started")
		log.Fatal().Err(server.ListenAndServe()).Msg("app_crashed") // blocking
	}
}
