package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"soga/quote_backend/internal/domain/quotation"
	"soga/quote_backend/internal/domain/translate"
)

// Translator translates a quotation document with a JSON-mode chat
// completion. The model gets the whole document and is told to touch only the
// text fields; Merge enforces that regardless of what comes back.
type Translator struct {
	client *openai.Client
	model  string
}

func New(apiKey, baseURL, model string) *Translator {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/") + "/v1"
	}
	return &Translator{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

var languageNames = map[quotation.Language]string{
	quotation.LanguageVI: "Vietnamese",
	quotation.LanguageEN: "English",
}

func (t *Translator) Translate(ctx context.Context, doc quotation.Document, target quotation.Language) (quotation.Document, error) {
	name, ok := languageNames[target]
	if !ok {
		return quotation.Document{}, fmt.Errorf("unsupported target language %q", target)
	}

	payload, err := json.Marshal(doc)
	if err != nil {
		return quotation.Document{}, err
	}

	system := "You translate business quotation documents. The user sends a JSON document. " +
		"Return the same JSON object with every human-readable text field translated into " + name + ". " +
		"Keep all ids, numbers, quantities, prices, rates, dates and the structure exactly as they are. " +
		"Respond with JSON only, no explanations."

	resp, err := t.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: string(payload)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return quotation.Document{}, err
	}
	if len(resp.Choices) == 0 {
		return quotation.Document{}, errors.New("empty completion")
	}

	content := stripCodeFences(strings.TrimSpace(resp.Choices[0].Message.Content))
	var translated quotation.Document
	if err := json.Unmarshal([]byte(content), &translated); err != nil {
		return quotation.Document{}, fmt.Errorf("invalid translation json: %w", err)
	}
	return translate.Merge(doc, translated, target), nil
}

func stripCodeFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
