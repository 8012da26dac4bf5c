package api

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"codesync/internal/analysis"
	"codesync/internal/metrics"
	"codesync/internal/models"
	"codesync/internal/session"
	"codesync/internal/utils"
)

const serviceName = "codesync"

type Handlers struct {
	log   *utils.Logger
	coord *session.Coordinator
}

func NewHandlers(log *utils.Logger, coord *session.Coordinator) *Handlers {
	return &Handlers{log: log, coord: coord}
}

func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("ok"))
}

// AnalyzeCode is the stateless analysis endpoint consumed by the editor UI.
// It never touches room state.
func (h *Handlers) AnalyzeCode(w http.ResponseWriter, r *http.Request) {
	var req models.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Code == "" || req.Language == "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Code and language are required"})
		return
	}
	writeJSON(w, analysis.Analyze(req.Code, req.Language))
}

/*** Collaboration WebSocket: join/edit/broadcast, one socket per client ***/

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

func (h *Handlers) CollabWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	metrics.SocketOpened(serviceName)
	defer metrics.SocketClosed(serviceName)

	client := session.NewClient(uuid.New().String(), conn)
	// Cleanup runs on any exit from the read loop so the departure is
	// announced while the transport still lists the connection.
	defer h.coord.Disconnect(client)

	for {
		var frame models.WSFrame
		if err := conn.ReadJSON(&frame); err != nil {
			return
		}

		switch frame.Type {
		case "join":
			var req models.JoinRequest
			marshal(frame.Data, &req)
			if req.RoomID == "" {
				h.log.Warn("join without roomId", "connection", client.ID)
				continue
			}
			h.coord.Join(client, req.RoomID, req.Username)

		case "code-change":
			var chg models.CodeChange
			marshal(frame.Data, &chg)
			if chg.RoomID == "" {
				continue
			}
			h.coord.CodeChange(client, chg.RoomID, chg.Code)

		case "language-change":
			var chg models.LanguageChange
			marshal(frame.Data, &chg)
			if chg.RoomID == "" {
				continue
			}
			h.coord.LanguageChange(client, chg.RoomID, chg.Language)

		default:
			client.Send(errFrame("unknown_type"))
		}
	}
}

func marshal(in any, out any) { b, _ := json.Marshal(in); _ = json.Unmarshal(b, out) }

func errFrame(msg string) models.WSFrame { return models.WSFrame{Type: "error", Data: msg} }

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
