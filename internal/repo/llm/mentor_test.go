package llm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/namanpunn/logikxmind-uat/internal/models"
)

func TestHistorySerialization(t *testing.T) {
	t.Parallel()

	t.Run("stored bot reply serializes as a json object", func(t *testing.T) {
		stored := &models.ChatEntry{
			StudentID: "abc123",
			Message: &models.MentorReply{
				Response:  "keep going",
				Resources: []string{"Khan Academy"},
			},
			IsBot:     true,
			Timestamp: time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC),
		}

		// round-trip through bson the way the repository hands entries back:
		// Message, typed any, decodes as an ordered document
		data, err := bson.Marshal(stored)
		require.NoError(t, err)
		var loaded models.ChatEntry
		require.NoError(t, bson.Unmarshal(data, &loaded))
		require.IsType(t, bson.D{}, loaded.Message)

		historyJSON, err := marshalSanitized(historyDocs([]*models.ChatEntry{&loaded}))
		require.NoError(t, err)

		assert.Contains(t, historyJSON, `"response": "keep going"`)
		assert.NotContains(t, historyJSON, `"Key"`)
		assert.NotContains(t, historyJSON, `"Value"`)
	})

	t.Run("history keeps only message and timestamp", func(t *testing.T) {
		entries := []*models.ChatEntry{
			{
				StudentID: "abc123",
				Message:   "how do I prepare for exams?",
				Timestamp: time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC),
			},
		}

		historyJSON, err := marshalSanitized(historyDocs(entries))
		require.NoError(t, err)

		assert.Contains(t, historyJSON, `"message": "how do I prepare for exams?"`)
		assert.Contains(t, historyJSON, `"timestamp": "2025-03-14T09:26:53Z"`)
		assert.NotContains(t, historyJSON, "student_id")
	})
}
