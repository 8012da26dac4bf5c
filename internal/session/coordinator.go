package session

import (
	"codesync/internal/models"
	"codesync/internal/utils"
)

// Publisher mirrors room-scoped frames to other server instances. Implemented
// by the presence relay; a nil publisher disables mirroring.
type Publisher interface {
	Publish(roomID string, frame models.WSFrame)
}

// Coordinator applies connection lifecycle and room mutation events to the
// registry, store and hub, and fans out the resulting broadcasts. None of its
// transitions can fail: absent rooms are treated as empty and created on
// first write.
type Coordinator struct {
	log      *utils.Logger
	registry *Registry
	store    *Store
	hub      *Hub
	relay    Publisher
}

func NewCoordinator(log *utils.Logger) *Coordinator {
	return &Coordinator{
		log:      log,
		registry: NewRegistry(),
		store:    NewStore(),
		hub:      NewHub(),
	}
}

// SetRelay attaches a cross-instance publisher for outbound room frames.
func (co *Coordinator) SetRelay(p Publisher) { co.relay = p }

func (co *Coordinator) Hub() *Hub           { return co.hub }
func (co *Coordinator) Store() *Store       { return co.store }
func (co *Coordinator) Registry() *Registry { return co.registry }

// Roster joins the room's live membership with the registry. A member that
// somehow has no binding is reported with an empty username rather than
// dropped from the roster.
func (co *Coordinator) Roster(roomID string) []models.Member {
	members := co.hub.Members(roomID)
	out := make([]models.Member, 0, len(members))
	for _, c := range members {
		name, _ := co.registry.Lookup(c.ID)
		out = append(out, models.Member{ConnectionID: c.ID, Username: name})
	}
	return out
}

// Join registers the connection's identity, adds it to the room group,
// replays any stored document to the joiner and announces the arrival. The
// joiner and the rest of the room receive the same "joined" payload.
func (co *Coordinator) Join(c *Client, roomID, username string) {
	co.registry.Bind(c.ID, username)
	co.hub.Join(roomID, c)

	// Roster is read after joining the group so the joiner sees itself.
	roster := co.Roster(roomID)

	if state, ok := co.store.State(roomID); ok {
		c.Send(models.WSFrame{Type: "sync-code", Data: state})
	}

	joined := models.WSFrame{Type: "joined", Data: models.JoinedEvent{
		Members:      roster,
		Username:     username,
		ConnectionID: c.ID,
	}}
	c.Send(joined)
	co.hub.Broadcast(roomID, c, joined)
	co.publish(roomID, joined)

	co.log.Info("client joined", "room", roomID, "connection", c.ID, "username", username)
}

// CodeChange stores the new text and forwards it to everyone else in the
// room. The sender already holds the value it just sent, so it gets no echo
// and no acknowledgement.
func (co *Coordinator) CodeChange(c *Client, roomID, code string) {
	co.store.MergeCode(roomID, code)
	frame := models.WSFrame{Type: "code-change", Data: models.CodeChange{Code: code}}
	co.hub.Broadcast(roomID, c, frame)
	co.publish(roomID, frame)
}

// LanguageChange mirrors CodeChange for the language field.
func (co *Coordinator) LanguageChange(c *Client, roomID, language string) {
	co.store.MergeLanguage(roomID, language)
	frame := models.WSFrame{Type: "language-change", Data: models.LanguageChange{Language: language}}
	co.hub.Broadcast(roomID, c, frame)
	co.publish(roomID, frame)
}

// Disconnect announces the departure to every room the connection belongs to,
// then clears its identity binding and group membership. Announcements go out
// first, while the connection is still a member. Safe to call more than once:
// the second call finds no rooms and no binding.
func (co *Coordinator) Disconnect(c *Client) {
	username, bound := co.registry.Lookup(c.ID)
	for _, roomID := range co.hub.RoomsOf(c) {
		frame := models.WSFrame{Type: "disconnected", Data: models.DisconnectedEvent{
			ConnectionID: c.ID,
			Username:     username,
		}}
		co.hub.Broadcast(roomID, c, frame)
		co.publish(roomID, frame)
	}
	co.registry.Unbind(c.ID)
	rooms := co.hub.LeaveAll(c)
	if bound {
		co.log.Info("client disconnected", "connection", c.ID, "rooms", len(rooms))
	}
}

func (co *Coordinator) publish(roomID string, frame models.WSFrame) {
	if co.relay != nil {
		co.relay.Publish(roomID, frame)
	}
}
