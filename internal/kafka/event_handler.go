package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	log "github.com/carousell/ct-go/pkg/logger/log_context"

	"github.com/namanpunn/logikxmind-uat/internal/models"
	"github.com/namanpunn/logikxmind-uat/internal/usecase"
)

// chatEventPattern is the only event kind the consumer acts on.
const chatEventPattern = "message.sent"

type EventHandler interface {
	HandleEvent(ctx context.Context, payload []byte) error
}

// chatEventHandler feeds chat events from the bus into the same generation
// flow the HTTP endpoint uses.
type chatEventHandler struct {
	chatUsecase usecase.ChatUsecase
}

func NewEventHandler(chatUsecase usecase.ChatUsecase) EventHandler {
	return &chatEventHandler{
		chatUsecase: chatUsecase,
	}
}

func (h *chatEventHandler) HandleEvent(ctx context.Context, payload []byte) error {
	var event models.ChatEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return fmt.Errorf("unmarshal chat event: %w", err)
	}

	if event.Pattern != chatEventPattern {
		log.Infow(ctx, "Ignoring event", "pattern", event.Pattern)
		return nil
	}

	// Skip replies the service produced itself to prevent loops
	if event.Data.IsBot {
		log.Infow(ctx, "Skipping bot-originated event",
			"unique_id", event.Data.UniqueID,
			"sender_id", event.Data.SenderID)
		return nil
	}

	_, err := h.chatUsecase.ProcessChat(ctx, models.ChatRequest{
		UniqueID: event.Data.UniqueID,
		Message:  event.Data.Message,
	})
	return err
}
