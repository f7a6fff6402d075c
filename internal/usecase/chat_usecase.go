package usecase

import (
	"context"
	"fmt"
	"time"

	log "github.com/carousell/ct-go/pkg/logger/log_context"

	"github.com/namanpunn/logikxmind-uat/internal/models"
	"github.com/namanpunn/logikxmind-uat/internal/repo/llm"
	"github.com/namanpunn/logikxmind-uat/internal/repo/mongodb"
)

type ChatUsecase interface {
	ProcessChat(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error)
}

type chatUsecase struct {
	studentRepo mongodb.StudentRepository
	entryRepo   mongodb.ChatEntryRepository
	mentor      llm.Mentor
	now         func() time.Time
}

func NewChatUsecase(
	studentRepo mongodb.StudentRepository,
	entryRepo mongodb.ChatEntryRepository,
	mentor llm.Mentor,
) ChatUsecase {
	return &chatUsecase{
		studentRepo: studentRepo,
		entryRepo:   entryRepo,
		mentor:      mentor,
		now:         time.Now,
	}
}

// ProcessChat runs the full chat flow: resolve the profile, log the inbound
// message, assemble recent history, generate a reply and log it. The inbound
// entry is written before the generation call and is not rolled back if that
// call fails, so a generation error leaves a one-sided history entry.
func (uc *chatUsecase) ProcessChat(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	student, created, err := uc.studentRepo.GetOrCreate(ctx, req.UniqueID)
	if err != nil {
		return nil, fmt.Errorf("resolve student: %w", err)
	}
	if created {
		log.Infow(ctx, "created new student profile", "student_id", student.ID.Hex(), "requested_id", req.UniqueID)
	}

	studentID := student.ID.Hex()
	inbound := &models.ChatEntry{
		StudentID: studentID,
		Message:   req.Message,
		Timestamp: uc.now(),
	}
	if err := uc.entryRepo.Append(ctx, inbound); err != nil {
		return nil, fmt.Errorf("log inbound message: %w", err)
	}

	history, err := uc.entryRepo.Recent(ctx, studentID, mongodb.RecentHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("fetch history: %w", err)
	}

	reply, err := uc.mentor.Generate(ctx, student, history, req.Message)
	if err != nil {
		return nil, err
	}

	outbound := &models.ChatEntry{
		StudentID: studentID,
		Message:   reply,
		IsBot:     true,
		Timestamp: uc.now(),
	}
	if err := uc.entryRepo.Append(ctx, outbound); err != nil {
		return nil, fmt.Errorf("log generated reply: %w", err)
	}

	return &models.ChatResponse{
		UniqueID:       studentID,
		Response:       reply,
		RequiresAction: len(reply.RequiresInfo) > 0,
	}, nil
}
