package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	log "github.com/carousell/ct-go/pkg/logger/log_context"

	"github.com/namanpunn/logikxmind-uat/internal/models"
	"github.com/namanpunn/logikxmind-uat/internal/repo/llm"
	"github.com/namanpunn/logikxmind-uat/internal/repo/mongodb"
)

const profileAnalyzerPrompt = `You are a career profile analyzer. Review the user's skills,
certifications, education, experience and stated career goals, and summarize
their strengths, gaps and readiness for the target roles in a few short
paragraphs of plain text.`

const roadmapCreatorPrompt = `You are a career roadmap creator. Using the profile analysis and the
user's target roles, produce a milestone-based development roadmap.

**Format your response in strict JSON format:**
` + "```json" + `
{
    "title": "Roadmap title",
    "milestones": [
        {
            "title": "Milestone title",
            "description": "What to achieve and why it matters.",
            "duration": "e.g. 3 months",
            "resources": ["Resource Name 1"]
        }
    ]
}
` + "```"

const careerAdvisorPrompt = `You are a career advisor. Given the profile analysis and the proposed
roadmap, give concise practical guidance on how to execute it: ordering,
pitfalls, and how to track progress. Answer in plain text.`

// RoadmapUsecase runs the sequential advisory pipeline: profile analysis,
// roadmap creation, then execution guidance. Each stage is one generation
// call and feeds its output into the next.
type RoadmapUsecase interface {
	GenerateRoadmap(ctx context.Context, user models.UserData) (*models.Roadmap, error)
	GetLatest(ctx context.Context, userID string) (*models.Roadmap, error)
}

type roadmapUsecase struct {
	roadmapRepo mongodb.RoadmapRepository
	mentor      llm.Mentor
}

func NewRoadmapUsecase(roadmapRepo mongodb.RoadmapRepository, mentor llm.Mentor) RoadmapUsecase {
	return &roadmapUsecase{
		roadmapRepo: roadmapRepo,
		mentor:      mentor,
	}
}

func (uc *roadmapUsecase) GenerateRoadmap(ctx context.Context, user models.UserData) (*models.Roadmap, error) {
	userJSON, err := json.MarshalIndent(llm.Sanitize(userDoc(user)), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serialize user data: %w", err)
	}

	analysis, err := uc.mentor.Complete(ctx, profileAnalyzerPrompt, "User Data: "+string(userJSON))
	if err != nil {
		return nil, fmt.Errorf("profile analysis stage: %w", err)
	}
	log.Infow(ctx, "profile analysis complete", "user_id", user.ID)

	roadmapText, err := uc.mentor.Complete(ctx, roadmapCreatorPrompt,
		"User Data: "+string(userJSON)+"\n\nProfile Analysis: "+analysis)
	if err != nil {
		return nil, fmt.Errorf("roadmap creation stage: %w", err)
	}

	block, err := llm.ExtractJSONBlock(roadmapText)
	if err != nil {
		return nil, fmt.Errorf("roadmap creation stage: %w", err)
	}
	draft, err := decodeRoadmapDraft(block)
	if err != nil {
		return nil, fmt.Errorf("roadmap creation stage: %w", err)
	}

	guidance, err := uc.mentor.Complete(ctx, careerAdvisorPrompt,
		"Profile Analysis: "+analysis+"\n\nRoadmap: "+block)
	if err != nil {
		return nil, fmt.Errorf("career guidance stage: %w", err)
	}

	roadmap := &models.Roadmap{
		UserID:     user.ID,
		Title:      draft.Title,
		Milestones: draft.Milestones,
		Feedback:   []string{guidance},
		Status:     models.RoadmapStatusDraft,
	}
	if err := uc.roadmapRepo.Create(ctx, roadmap); err != nil {
		return nil, fmt.Errorf("persist roadmap: %w", err)
	}

	log.Infow(ctx, "roadmap generated", "user_id", user.ID, "milestones", len(roadmap.Milestones))
	return roadmap, nil
}

func (uc *roadmapUsecase) GetLatest(ctx context.Context, userID string) (*models.Roadmap, error) {
	return uc.roadmapRepo.GetLatestByUserID(ctx, userID)
}

type roadmapDraft struct {
	Title      string             `json:"title"`
	Milestones []models.Milestone `json:"milestones"`
}

func decodeRoadmapDraft(raw string) (*roadmapDraft, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.DisallowUnknownFields()

	var draft roadmapDraft
	if err := dec.Decode(&draft); err != nil {
		return nil, fmt.Errorf("%w: %v", llm.ErrMalformedReply, err)
	}
	return &draft, nil
}

func userDoc(user models.UserData) map[string]any {
	return map[string]any{
		"id":             user.ID,
		"email":          user.Email,
		"skills":         user.Skills,
		"certifications": user.Certifications,
		"career_goals":   user.CareerGoals,
		"education":      user.Education,
		"experience":     user.Experience,
		"progress":       user.Progress,
	}
}
