package handlers

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"tourism-server/models"
	services "tourism-server/service"
	"tourism-server/service/autosuggest"
)

const (
	wsWriteWait    = 5 * time.Second
	wsMaxFrameSize = 4096

	SOURCE_LOCAL = "local"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ClientFrame is a UI event sent by the browser.
type ClientFrame struct {
	Type  string `json:"type"` // input, key, focus, blur, select, state
	Text  string `json:"text,omitempty"`
	Key   string `json:"key,omitempty"`
	Index int    `json:"index,omitempty"`
}

// ServerFrame is pushed to the browser.
type ServerFrame struct {
	Type    string                  `json:"type"` // suggestions, selected, submit, error, state
	Query   string                  `json:"query,omitempty"`
	Items   []models.SuggestionItem `json:"items,omitempty"`
	Item    *models.SuggestionItem  `json:"item,omitempty"`
	Message string                  `json:"message,omitempty"`
	State   *autosuggest.Snapshot   `json:"state,omitempty"`
}

// SuggestWSHandler hosts one autosuggest engine per WebSocket connection.
type SuggestWSHandler struct {
	suggestionService *services.SuggestionService
	debounce          time.Duration
	timeout           time.Duration
	limit             int
	logger            *slog.Logger
}

func NewSuggestWSHandler(suggestionService *services.SuggestionService, debounce, timeout time.Duration, limit int, logger *slog.Logger) *SuggestWSHandler {
	return &SuggestWSHandler{
		suggestionService: suggestionService,
		debounce:          debounce,
		timeout:           timeout,
		limit:             limit,
		logger:            logger.With("component", "suggest_ws"),
	}
}

// wsConn serialises writes; gorilla/websocket allows one writer at a time.
type wsConn struct {
	mu     sync.Mutex
	conn   *websocket.Conn
	logger *slog.Logger
}

func (c *wsConn) send(frame ServerFrame) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
	if err := c.conn.WriteJSON(frame); err != nil {
		c.logger.Debug("websocket write failed", "error", err)
	}
}

// Serve handles GET /v1/suggest/ws. With ?source=local the pool is loaded
// once and filtered synchronously; otherwise every keystroke is debounced
// and fetched.
func (h *SuggestWSHandler) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(wsMaxFrameSize)

	out := &wsConn{conn: conn, logger: h.logger}
	opts := autosuggest.Options{
		Debounce: h.debounce,
		Timeout:  h.timeout,
		Limit:    h.limit,
		Logger:   h.logger,
		OnResults: func(query string, items []models.SuggestionItem) {
			if items == nil {
				items = []models.SuggestionItem{}
			}
			out.send(ServerFrame{Type: "suggestions", Query: query, Items: items})
		},
		OnSelect: func(item models.SuggestionItem) {
			out.send(ServerFrame{Type: "selected", Item: &item})
		},
		OnSubmit: func(query string) {
			out.send(ServerFrame{Type: "submit", Query: query})
		},
		OnError: func(message string) {
			out.send(ServerFrame{Type: "error", Message: message})
		},
	}

	if r.URL.Query().Get(SOURCE_QUERY_ARG) == SOURCE_LOCAL {
		pool, err := h.suggestionService.Pool(r.Context())
		if err != nil {
			h.logger.Error("failed to build suggestion pool", "error", err)
			out.send(ServerFrame{Type: "error", Message: autosuggest.FailedMessage})
			return
		}
		opts.Pool = pool
	} else {
		opts.Fetch = h.suggestionService.Suggest
	}

	engine := autosuggest.New(opts)
	defer engine.Close()

	for {
		var frame ClientFrame
		if err := conn.ReadJSON(&frame); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Debug("websocket read ended", "error", err)
			}
			return
		}

		switch frame.Type {
		case "input":
			engine.Input(frame.Text)
			continue
		case "key":
			engine.Key(autosuggest.Key(frame.Key))
		case "focus":
			engine.Focus()
		case "blur":
			engine.Blur()
		case "select":
			if !engine.Select(frame.Index) {
				out.send(ServerFrame{Type: "error", Message: "No such suggestion"})
				continue
			}
		case "state":
		default:
			out.send(ServerFrame{Type: "error", Message: "Unknown frame type"})
			continue
		}

		st := engine.State()
		out.send(ServerFrame{Type: "state", State: &st})
	}
}
