package reminder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiDrafter implements Drafter against Google's Gemini API, asking
// for JSON output and unmarshalling it into the draft structs.
type GeminiDrafter struct {
	client  *genai.Client
	modelID string
}

func NewGeminiDrafter(ctx context.Context, apiKey, modelID string) (*GeminiDrafter, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("reminder: gemini api key is required")
	}
	if strings.TrimSpace(modelID) == "" {
		modelID = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("reminder: failed to create gemini client: %w", err)
	}

	return &GeminiDrafter{client: client, modelID: modelID}, nil
}

func (d *GeminiDrafter) DraftReminder(ctx context.Context, in SmartReminderInput) (SmartReminderOutput, error) {
	var out SmartReminderOutput
	if err := d.generate(ctx, smartReminderPrompt(in), &out); err != nil {
		return SmartReminderOutput{}, err
	}
	if out.ClientReminderMessage == "" {
		return SmartReminderOutput{}, errors.New("reminder: gemini returned an empty reminder message")
	}
	return out, nil
}

func (d *GeminiDrafter) DraftFollowUp(ctx context.Context, in FollowUpInput) (FollowUpOutput, error) {
	var out FollowUpOutput
	if err := d.generate(ctx, followUpPrompt(in), &out); err != nil {
		return FollowUpOutput{}, err
	}
	if out.Message == "" {
		return FollowUpOutput{}, errors.New("reminder: gemini returned an empty follow-up message")
	}
	return out, nil
}

func (d *GeminiDrafter) generate(ctx context.Context, prompt string, out any) error {
	model := d.client.GenerativeModel(d.modelID)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return fmt.Errorf("reminder: gemini generation failed: %w", err)
	}

	text, err := responseText(resp)
	if err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(text), out); err != nil {
		return fmt.Errorf("reminder: gemini returned malformed JSON: %w", err)
	}
	return nil
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", errors.New("reminder: gemini returned no candidates")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", errors.New("reminder: gemini returned empty content")
	}

	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}

	return strings.TrimSpace(b.String()), nil
}
