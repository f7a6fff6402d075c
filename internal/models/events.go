package models

// ChatEvent is the envelope consumed from Kafka. Only "message.sent"
// patterns are processed; everything else is acknowledged and dropped.
type ChatEvent struct {
	Pattern string        `json:"pattern"`
	Data    ChatEventData `json:"data"`
}

type ChatEventData struct {
	UniqueID string `json:"unique_id" validate:"required"`
	Message  string `json:"message" validate:"required"`
	SenderID string `json:"sender_id"`
	IsBot    bool   `json:"is_bot"`
}
