// Package server serves the cooker API over HTTP.
package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/mux"

	"github.com/voidshard/cooker/pkg/api"
	"github.com/voidshard/cooker/pkg/api/http/common"
	"github.com/voidshard/cooker/pkg/structs"
)

const (
	wait = 30 * time.Second
)

type Server struct {
	addr       string
	debug      bool
	svc        api.API
	exit       chan os.Signal
	httpserver *http.Server
}

func NewServer(addr string, debug bool) *Server {
	return &Server{
		addr:  addr,
		debug: debug,
		exit:  make(chan os.Signal, 1),
	}
}

// Handler returns the router serving the given API.
func (s *Server) Handler(svc api.API) http.Handler {
	s.svc = svc

	router := mux.NewRouter()
	router.HandleFunc(common.API_HEALTH, s.Health).Methods(http.MethodGet)
	router.HandleFunc(common.API_SESSION, s.Session).Methods(http.MethodGet)
	router.HandleFunc(common.API_COOKING, s.Cooking).Methods(http.MethodPatch)
	router.HandleFunc(common.API_ASSETS, s.Assets).Methods(http.MethodGet)
	router.HandleFunc(common.API_TASKS, s.Tasks).Methods(http.MethodGet)
	router.HandleFunc(common.API_RECOOK, s.ToggleOp(s.svc.Recook)).Methods(http.MethodPatch)
	router.HandleFunc(common.API_REBUILD, s.ToggleOp(s.svc.Rebuild)).Methods(http.MethodPatch)
	router.HandleFunc(common.API_DELETE, s.ToggleOp(s.svc.Delete)).Methods(http.MethodPatch)

	if s.debug {
		log.Println("[HTTP] debug enabled, adding per-request logging middleware")
		router.Use(loggingMiddleware)
	}
	return router
}

// ServeForever serves until interrupted or closed.
func (s *Server) ServeForever(svc api.API) error {
	s.httpserver = &http.Server{
		Handler:      s.Handler(svc),
		Addr:         s.addr,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	go func() {
		log.Println("[HTTP] listening on", s.httpserver.Addr)
		if err := s.httpserver.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Println("[HTTP]", err)
		}
	}()

	signal.Notify(s.exit, os.Interrupt)
	defer signal.Stop(s.exit)
	<-s.exit

	ctx, cancel := context.WithTimeout(context.Background(), wait)
	defer cancel()
	return s.httpserver.Shutdown(ctx)
}

func (s *Server) Close() error {
	select {
	case s.exit <- os.Interrupt:
	default:
	}
	return nil
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

func (s *Server) Session(w http.ResponseWriter, r *http.Request) {
	info, err := s.svc.Session()
	if err != nil {
		http.Error(w, err.Error(), mapError(err))
		return
	}

	err = json.NewEncoder(w).Encode(info)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) Cooking(w http.ResponseWriter, r *http.Request) {
	req := &structs.CookingRequest{}
	err := unmarshalJson(w, r, req)
	if err != nil {
		return
	}

	err = s.svc.SetCookingEnabled(req)
	if err != nil {
		http.Error(w, err.Error(), mapError(err))
		return
	}

	err = json.NewEncoder(w).Encode(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) Assets(w http.ResponseWriter, r *http.Request) {
	items, err := s.svc.Assets()
	if err != nil {
		http.Error(w, err.Error(), mapError(err))
		return
	}
	if s.debug {
		log.Println("[HTTP]", r.URL, "returned", len(items), "items")
	}

	err = json.NewEncoder(w).Encode(items)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) Tasks(w http.ResponseWriter, r *http.Request) {
	q := &structs.Query{}
	err := unmarshalQuery(w, r, q)
	if err != nil {
		return
	}

	items, err := s.svc.Tasks(q)
	if err != nil {
		http.Error(w, err.Error(), mapError(err))
		return
	}
	if s.debug {
		log.Println("[HTTP]", r.URL, "returned", len(items), "items")
	}

	err = json.NewEncoder(w).Encode(items)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) ToggleOp(fn func([]*structs.AssetRef) (int64, error)) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		refs := []*structs.AssetRef{}
		err := unmarshalJson(w, r, &refs)
		if err != nil {
			return
		}

		updated, err := fn(refs)
		if err != nil {
			http.Error(w, err.Error(), mapError(err))
			return
		}

		err = json.NewEncoder(w).Encode(&common.UpdateResponse{Updated: updated})
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}
