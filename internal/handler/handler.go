package handler

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"codebro-server/internal/domain"
	"codebro-server/internal/metrics"
	"codebro-server/internal/service"
)

// Handler exposes the HTTP API.
type Handler struct {
	conversationService service.IConversationService
	chatService         service.IChatService
	db                  *mongodriver.Database
	logger              zerolog.Logger
	metrics             *metrics.Metrics
}

// NewHandler creates a new Handler.
func NewHandler(
	conversationService service.IConversationService,
	chatService service.IChatService,
	db *mongodriver.Database,
	logger zerolog.Logger,
	m *metrics.Metrics,
) *Handler {
	return &Handler{
		conversationService: conversationService,
		chatService:         chatService,
		db:                  db,
		logger:              logger,
		metrics:             m,
	}
}

// Router builds the HTTP router with all routes and middleware attached.
func (h *Handler) Router() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/", h.handleRoot).Methods("GET")
	r.HandleFunc("/api/hello", h.handleHello).Methods("GET")
	r.HandleFunc("/api/conversations", h.handleCreateConversation).Methods("POST")
	r.HandleFunc("/api/conversations", h.handleListConversations).Methods("GET")
	r.HandleFunc("/api/conversations/{id}", h.handleGetConversation).Methods("GET")
	r.HandleFunc("/api/chat", h.handleChat).Methods("POST")
	r.HandleFunc("/test", h.handleTest).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	r.Use(h.observe)

	// Permissive CORS so a browser frontend can talk to us from anywhere.
	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)
	return cors(r)
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Hello from CodeBro Backend!"})
}

func (h *Handler) handleHello(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Hello from the backend API!"})
}

type createConversationRequest struct {
	Title string `json:"title"`
}

type createConversationResponse struct {
	ConversationID string `json:"conversation_id"`
	Title          string `json:"title"`
}

func (h *Handler) handleCreateConversation(w http.ResponseWriter, r *http.Request) {
	var req createConversationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	conversation, err := h.conversationService.CreateConversation(r.Context(), req.Title)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, createConversationResponse{
		ConversationID: conversation.ID.Hex(),
		Title:          conversation.Title,
	})
}

type listConversationsResponse struct {
	Items []*domain.ConversationSummary `json:"items"`
}

func (h *Handler) handleListConversations(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.conversationService.ListConversations(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	if summaries == nil {
		summaries = []*domain.ConversationSummary{}
	}
	writeJSON(w, http.StatusOK, listConversationsResponse{Items: summaries})
}

type getConversationResponse struct {
	Conversation *domain.Conversation `json:"conversation"`
	Messages     []*domain.Message    `json:"messages"`
}

func (h *Handler) handleGetConversation(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	conversation, messages, err := h.conversationService.GetConversation(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	if messages == nil {
		messages = []*domain.Message{}
	}
	writeJSON(w, http.StatusOK, getConversationResponse{
		Conversation: conversation,
		Messages:     messages,
	})
}

type chatRequest struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversation_id"`
}

type chatResponse struct {
	ConversationID string `json:"conversation_id"`
	Reply          string `json:"reply"`
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "message must not be empty")
		return
	}

	conversationID, reply, err := h.chatService.Chat(r.Context(), req.Message, req.ConversationID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{
		ConversationID: conversationID,
		Reply:          reply,
	})
}

// handleTest reports the state of the database connection for quick diagnosis.
func (h *Handler) handleTest(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"backend":           "running",
		"database":          "not available",
		"database_url":      envStatus("DATABASE_URL"),
		"database_name":     envStatus("DATABASE_NAME"),
		"connection_status": "not connected",
		"collections":       []string{},
	}

	if h.db != nil {
		response["database"] = "available"
		response["connection_status"] = "connected"

		opts := options.ListCollections().SetNameOnly(true)
		collections, err := h.db.ListCollectionNames(r.Context(), bson.M{}, opts)
		if err != nil {
			response["database"] = "connected but error: " + err.Error()
		} else {
			if len(collections) > 10 {
				collections = collections[:10]
			}
			response["collections"] = collections
			response["database"] = "connected and working"
		}
	}

	writeJSON(w, http.StatusOK, response)
}

func envStatus(key string) string {
	if os.Getenv(key) != "" {
		return "set"
	}
	return "not set"
}

// writeServiceError maps domain errors to status codes; anything unexpected
// is a 500.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "Conversation not found")
	case errors.Is(err, domain.ErrEmptyMessage), errors.Is(err, domain.ErrInvalidRole):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
