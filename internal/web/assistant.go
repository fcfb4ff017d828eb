package web

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/chucky-1/finfine/internal/assistant"
)

const (
	assistantReadLimit = 4096
	writeWait          = 10 * time.Second
)

// assistantSocket chats with the assistant: the greeting first, then one reply per
// non-blank message.
func (s *Server) assistantSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logrus.Warnf("web, upgrade assistant socket error: %v", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(assistantReadLimit)

	if err = writeMessage(conn, s.deps.Assistant.Greet()); err != nil {
		logrus.Debugf("web, assistant greeting error: %v", err)
		return
	}

	for {
		var in assistant.Message
		if err = conn.ReadJSON(&in); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logrus.Debugf("web, assistant read error: %v", err)
			}
			return
		}
		reply, ok, err := s.deps.Assistant.Reply(r.Context(), in.Text)
		if err != nil {
			if !errors.Is(err, r.Context().Err()) {
				logrus.Errorf("web, assistant reply error: %v", err)
			}
			return
		}
		if !ok {
			continue
		}
		if err = writeMessage(conn, reply); err != nil {
			logrus.Debugf("web, assistant write error: %v", err)
			return
		}
	}
}

func writeMessage(conn *websocket.Conn, msg assistant.Message) error {
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return conn.WriteJSON(msg)
}
