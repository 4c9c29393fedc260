package api

import (
	"context"
	"encoding/json"
	"log"

	"github.com/example/securecam-store/modules/support"
	"github.com/gofiber/contrib/websocket"
)

// ChatMessage is the frame exchanged over the support websocket.
type ChatMessage struct {
	Type    string          `json:"type"` // "greeting", "faqs", "message", "reply", "error"
	Payload json.RawMessage `json:"payload,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// HandleSupportChat runs one scripted chat session over a websocket. The
// bot greets, lists the FAQs, then answers each incoming "message" frame.
func (h *Handlers) HandleSupportChat(c *websocket.Conn) {
	defer c.Close()

	h.sendChat(c, "greeting", map[string]string{"text": support.Greeting})
	h.sendChat(c, "faqs", h.support.FAQs())

	for {
		_, msgBytes, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[api] Support chat error: %v", err)
			}
			return
		}

		var msg ChatMessage
		if err := json.Unmarshal(msgBytes, &msg); err != nil {
			h.sendChatError(c, "Invalid message format")
			continue
		}

		switch msg.Type {
		case "message":
			var req AskRequest
			if err := json.Unmarshal(msg.Payload, &req); err != nil {
				h.sendChatError(c, "Invalid message payload")
				continue
			}

			reply, err := h.support.Answer(context.Background(), req.Message)
			if err != nil {
				h.sendChatError(c, "Support service unavailable")
				continue
			}
			h.sendChat(c, "reply", reply)
			h.sendChat(c, "reply", map[string]string{"text": support.FollowUp})
		default:
			h.sendChatError(c, "Unknown message type: "+msg.Type)
		}
	}
}

func (h *Handlers) sendChat(c *websocket.Conn, msgType string, data any) {
	payload, err := json.Marshal(data)
	if err != nil {
		log.Printf("[api] Failed to marshal chat payload: %v", err)
		return
	}

	msgBytes, err := json.Marshal(ChatMessage{Type: msgType, Payload: payload})
	if err != nil {
		log.Printf("[api] Failed to marshal chat frame: %v", err)
		return
	}

	if err := c.WriteMessage(websocket.TextMessage, msgBytes); err != nil {
		log.Printf("[api] Failed to send chat frame: %v", err)
	}
}

func (h *Handlers) sendChatError(c *websocket.Conn, errMsg string) {
	msgBytes, err := json.Marshal(ChatMessage{Type: "error", Error: errMsg})
	if err != nil {
		return
	}
	if err := c.WriteMessage(websocket.TextMessage, msgBytes); err != nil {
		log.Printf("[api] Failed to send chat error: %v", err)
	}
}
