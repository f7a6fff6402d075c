package llm

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"

	"github.com/namanpunn/logikxmind-uat/internal/models"
)

var (
	// ErrEmptyResponse means the generation API returned no candidate text.
	ErrEmptyResponse = errors.New("empty response from generation API")
	// ErrNoJSONFound means the model text carries no ```json fenced block.
	ErrNoJSONFound = errors.New("no json block found in model response")
	// ErrMalformedReply means the fenced block did not decode into the
	// expected reply shape.
	ErrMalformedReply = errors.New("malformed json in model response")
)

// The model is instructed to wrap its reply in exactly this fence. The
// contract is brittle on purpose: a missing closing fence or a stray space
// in the fence tag fails extraction rather than guessing.
var jsonBlockRe = regexp.MustCompile("(?s)```json\n(.*?)\n```")

// ExtractJSONBlock returns the contents of the first ```json fenced block in
// text. Unfenced JSON does not count.
func ExtractJSONBlock(text string) (string, error) {
	match := jsonBlockRe.FindStringSubmatch(text)
	if match == nil {
		return "", ErrNoJSONFound
	}
	return match[1], nil
}

// DecodeMentorReply strictly decodes a fenced block into a MentorReply.
// Unknown fields and shape mismatches are rejected so callers never see an
// untyped passthrough of whatever the model claimed.
func DecodeMentorReply(raw string) (*models.MentorReply, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.DisallowUnknownFields()

	var reply models.MentorReply
	if err := dec.Decode(&reply); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedReply, err)
	}
	return &reply, nil
}
