package translation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// DefaultOpenAIModel is used when no model is configured
const DefaultOpenAIModel = "gpt-4o-mini"

const systemPromptTemplate = "You are a professional medical translator working for a first-aid assistant. " +
	"Translate the user's message into %s (language code %s). " +
	"Keep numbers, doses, units, abbreviations such as CPR or F.A.S.T., and emoji unchanged. " +
	"Reply with the translation only, without quotes, notes or explanations."

// OpenAITranslator calls the OpenAI chat completion API to translate text
type OpenAITranslator struct {
	client *openai.Client
	model  string
}

// NewOpenAITranslator constructs an OpenAI-backed translator. An empty model
// falls back to DefaultOpenAIModel; an empty baseURL uses the public API.
func NewOpenAITranslator(apiKey, model, baseURL string) *OpenAITranslator {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = DefaultOpenAIModel
	}

	return &OpenAITranslator{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// Translate sends text to the chat completion API and returns the reply.
// An empty reply is returned as an empty string with no error.
func (t *OpenAITranslator) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	if t.client == nil {
		return "", errors.New("openai client not initialized")
	}

	resp, err := t.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: fmt.Sprintf(systemPromptTemplate, DisplayName(targetLanguage), targetLanguage),
			},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return "", fmt.Errorf("openai translation to %s failed: %w", targetLanguage, err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}

	return cleanReply(resp.Choices[0].Message.Content), nil
}

// cleanReply strips whitespace and one pair of wrapping quotes the model
// sometimes adds despite the prompt.
func cleanReply(reply string) string {
	reply = strings.TrimSpace(reply)
	for _, pair := range [][2]string{{`"`, `"`}, {"“", "”"}, {"«", "»"}} {
		if len(reply) >= len(pair[0])+len(pair[1]) && strings.HasPrefix(reply, pair[0]) && strings.HasSuffix(reply, pair[1]) {
			return strings.TrimSpace(reply[len(pair[0]) : len(reply)-len(pair[1])])
		}
	}
	return reply
}
