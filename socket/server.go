package socket

import (
	"log"

	socketio "github.com/googollee/go-socket.io"
)

// UserRoom is the per-user room name a client joins after authenticating
func UserRoom(userID string) string {
	return "user_" + userID
}

// NewSocketServer initializes and returns a new Socket.IO server. Clients
// emit "join" with their user id to subscribe to their personal room;
// membership ends with the connection.
func NewSocketServer() *socketio.Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(c socketio.Conn) error {
		log.Println("✅ Socket connected:", c.ID())
		return nil
	})

	server.OnEvent("/", "join", func(c socketio.Conn, userID string) {
		if userID == "" {
			log.Println("❌ Invalid userId in join request")
			return
		}
		c.Join(UserRoom(userID))
		log.Printf("👥 Connection %s joined room %s\n", c.ID(), UserRoom(userID))
	})

	server.OnError("/", func(c socketio.Conn, err error) {
		log.Println("Socket error:", err)
	})

	server.OnDisconnect("/", func(c socketio.Conn, reason string) {
		log.Println("❌ Socket disconnected:", c.ID(), reason)
	})

	return server
}
