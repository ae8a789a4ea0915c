package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/Aryamantiwari17/Automatic-Email-Reply-System/internal/models"
	"github.com/Aryamantiwari17/Automatic-Email-Reply-System/pkg/logger"
	"github.com/Aryamantiwari17/Automatic-Email-Reply-System/pkg/router"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Be careful with this in production
	},
}

type RouteRequest struct {
	Email string `json:"email"`
}

type RouteResponse struct {
	Category models.Category `json:"category"`
	Response string          `json:"response"`
}

// Server exposes the router over HTTP and WebSocket. Both surfaces return
// the same four-outcome contract; no request mutates shared state.
type Server struct {
	router *router.Router
	log    *logger.Logger
}

func New(r *router.Router, log *logger.Logger) *Server {
	return &Server{router: r, log: log}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/route", s.handleRoute)
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	return mux
}

func (s *Server) ListenAndServe(port string) error {
	s.log.Info("starting server", "port", port)
	return http.ListenAndServe(":"+port, s.Handler())
}

func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req RouteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Email == "" {
		http.Error(w, "email is required", http.StatusBadRequest)
		return
	}

	result := s.router.Route(r.Context(), req.Email)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(RouteResponse{
		Category: result.Category,
		Response: result.Response,
	}); err != nil {
		s.log.Error("error encoding response", "error", err)
	}
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Error("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	for {
		var req RouteRequest
		if err := conn.ReadJSON(&req); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Error("error reading message", "error", err)
			}
			return
		}

		result := s.router.Route(r.Context(), req.Email)

		if err := conn.WriteJSON(RouteResponse{
			Category: result.Category,
			Response: result.Response,
		}); err != nil {
			s.log.Error("error sending message", "error", err)
			return
		}
	}
}
