package socket

import (
	"log"

	socketio "github.com/googollee/go-socket.io"
)

// Notifier pushes events into per-user rooms. Delivery is best-effort: a
// room with no live connections drops the event, and a broadcast failure
// must never take down the operation that triggered it.
type Notifier struct {
	Server *socketio.Server
}

// Notify broadcasts one event to the user's room, swallowing any panic from
// the socket layer
func (n *Notifier) Notify(userID, event string, payload interface{}) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered notify failure for %s/%s: %v", userID, event, r)
		}
	}()
	n.Server.BroadcastToRoom("/", UserRoom(userID), event, payload)
}
