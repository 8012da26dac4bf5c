package presence

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"codesync/internal/models"
	"codesync/internal/utils"
)

const channel = "codesync:events"

// Relay mirrors room-scoped frames between server instances through Redis
// pub/sub: frames published by one instance are re-broadcast to the room's
// local members on every other instance. Delivery is best-effort; publish
// failures are logged and dropped.
type Relay struct {
	rdb      *redis.Client
	log      *utils.Logger
	instance string
}

func NewRelay(rdb *redis.Client, log *utils.Logger) *Relay {
	return &Relay{
		rdb:      rdb,
		log:      log,
		instance: uuid.New().String(),
	}
}

// InstanceID returns the unique ID this relay stamps on published events.
func (r *Relay) InstanceID() string { return r.instance }

type envelope struct {
	Instance string         `json:"instance"`
	RoomID   string         `json:"roomId"`
	Frame    models.WSFrame `json:"frame"`
}

func (r *Relay) Publish(roomID string, frame models.WSFrame) {
	payload, err := json.Marshal(envelope{Instance: r.instance, RoomID: roomID, Frame: frame})
	if err != nil {
		return
	}
	if err := r.rdb.Publish(context.Background(), channel, payload).Err(); err != nil {
		r.log.Warn("presence publish failed", "room", roomID, "error", err.Error())
	}
}

// LocalBroadcaster is the subset of the hub the subscriber needs. Satisfied
// by session.Hub.
type LocalBroadcaster interface {
	BroadcastAll(roomID string, frame models.WSFrame)
}

// Subscribe re-broadcasts frames published by other instances to the local
// members of each room. Blocks until ctx is cancelled.
func (r *Relay) Subscribe(ctx context.Context, hub LocalBroadcaster) {
	sub := r.rdb.Subscribe(ctx, channel)
	defer sub.Close()
	ch := sub.Channel()

	r.log.Info("presence relay subscribed", "channel", channel, "instance", r.instance)

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var ev envelope
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				r.log.Warn("presence relay: bad payload", "error", err.Error())
				continue
			}
			if ev.Instance == r.instance {
				continue
			}
			hub.BroadcastAll(ev.RoomID, ev.Frame)
		}
	}
}
