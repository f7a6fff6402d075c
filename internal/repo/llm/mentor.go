package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/namanpunn/logikxmind-uat/internal/config"
	"github.com/namanpunn/logikxmind-uat/internal/models"
	"github.com/namanpunn/logikxmind-uat/internal/repo/catalog"
)

const mentorSystemPrompt = `You are a student mentor AI, providing personalized guidance and support to students.

**Handling General Queries:**
- If the student asks general questions about study tips, career advice, or resources, provide helpful information.
- Do NOT ask for sensitive personal information beyond what is necessary for mentoring.
- Example general questions:
  - "How can I improve my study habits?"
  - "What career paths are available in computer science?"

**Handling Student-Specific Queries:**
- If the student asks about specific academic or career goals, analyze their profile (grade, major, interests, goals).
- If any relevant details are missing, ask for them before providing targeted advice.
- Focus on providing actionable advice and relevant resources.

**Format your response in strict JSON format:**
` + "```json" + `
{
    "response": "Provide a clear answer based on the student's query.",
    "next_question": "Ask for missing details only if required.",
    "requires_info": ["grade", "major", "interests", "goals"],
    "resources": ["Resource Name 1", "Resource Name 2"]
}
` + "```"

type Mentor interface {
	// Generate runs one synchronous generation round trip: sanitized
	// profile, catalog and history plus the latest message in, strictly
	// decoded MentorReply out. No retry, no caching.
	Generate(ctx context.Context, student *models.Student, history []*models.ChatEntry, message string) (*models.MentorReply, error)

	// Complete runs a plain text generation with the given system and user
	// prompts, for callers that post-process the raw text themselves.
	Complete(ctx context.Context, system, prompt string) (string, error)
}

type mentor struct {
	genkit  *genkit.Genkit
	catalog catalog.Repository
	model   string
}

func NewMentor(g *genkit.Genkit, cfg *config.Config, catalogRepo catalog.Repository) Mentor {
	return &mentor{
		genkit:  g,
		catalog: catalogRepo,
		model:   cfg.LLM.Model,
	}
}

func (m *mentor) Generate(ctx context.Context, student *models.Student, history []*models.ChatEntry, message string) (*models.MentorReply, error) {
	resources, err := m.catalog.Resources(ctx)
	if err != nil {
		return nil, fmt.Errorf("load resources: %w", err)
	}

	profileJSON, err := marshalSanitized(studentDoc(student))
	if err != nil {
		return nil, fmt.Errorf("serialize profile: %w", err)
	}
	resourcesJSON, err := marshalSanitized(resources)
	if err != nil {
		return nil, fmt.Errorf("serialize resources: %w", err)
	}
	historyJSON, err := marshalSanitized(historyDocs(history))
	if err != nil {
		return nil, fmt.Errorf("serialize history: %w", err)
	}

	segments := []string{
		"Student Profile: " + profileJSON,
		"Available Resources: " + resourcesJSON,
		"Conversation History: " + historyJSON,
		"Student's latest query: " + message,
	}

	raw, err := m.generate(ctx, mentorSystemPrompt, strings.Join(segments, "\n\n"))
	if err != nil {
		return nil, err
	}

	block, err := ExtractJSONBlock(raw)
	if err != nil {
		log.Warnw(ctx, "model response missing json block", "response", raw)
		return nil, err
	}

	return DecodeMentorReply(block)
}

func (m *mentor) Complete(ctx context.Context, system, prompt string) (string, error) {
	return m.generate(ctx, system, prompt)
}

func (m *mentor) generate(ctx context.Context, system, prompt string) (string, error) {
	resp, err := genkit.Generate(ctx, m.genkit,
		ai.WithMessages(
			ai.NewSystemTextMessage(system),
			ai.NewUserTextMessage(prompt),
		),
		ai.WithModelName(m.model),
	)
	if err != nil {
		return "", fmt.Errorf("generation API call: %w", err)
	}
	if resp == nil || resp.Text() == "" {
		return "", ErrEmptyResponse
	}
	return resp.Text(), nil
}

// studentDoc converts the profile into a plain document so the sanitizer can
// walk it the same way it walks history loaded back from Mongo.
func studentDoc(student *models.Student) map[string]any {
	if student == nil {
		return map[string]any{}
	}

	data, err := bson.Marshal(student)
	if err != nil {
		return map[string]any{"_id": student.ID.Hex()}
	}
	var doc map[string]any
	if err := bson.Unmarshal(data, &doc); err != nil {
		return map[string]any{"_id": student.ID.Hex()}
	}
	return doc
}

// historyDocs keeps only message and timestamp per entry, mirroring the
// projection used when the log is queried for prompt context.
func historyDocs(history []*models.ChatEntry) []map[string]any {
	docs := make([]map[string]any, 0, len(history))
	for _, entry := range history {
		docs = append(docs, map[string]any{
			"message":   entry.Message,
			"timestamp": entry.Timestamp,
		})
	}
	return docs
}

func marshalSanitized(v any) (string, error) {
	data, err := json.MarshalIndent(Sanitize(v), "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
