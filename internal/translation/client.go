package translation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SurakshaKumari/menudigitale-sub000/internal/model"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"
)

const systemPrompt = "You are a translation engine for restaurant menus. " +
	"Translate only the text values of the JSON document you receive. " +
	"Preserve the JSON structure, keys and array ordering exactly. " +
	"Respond with valid JSON only, no commentary and no code fences."

// Client translates a menu projection into a target language.
type Client interface {
	Translate(ctx context.Context, projection *model.MenuTranslation, targetLanguage string) (*model.MenuTranslation, error)
}

// OpenAIClient implements Client against the OpenAI chat-completion API.
type OpenAIClient struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	logger  zerolog.Logger
}

// NewOpenAIClient creates an OpenAI-backed translation client. Every call is
// bounded by the given timeout.
func NewOpenAIClient(apiKey, model string, timeout time.Duration, logger zerolog.Logger) *OpenAIClient {
	return &OpenAIClient{
		client:  openai.NewClient(apiKey),
		model:   model,
		timeout: timeout,
		logger:  logger.With().Str("client", "translation").Logger(),
	}
}

// Translate sends the projection to the completion endpoint and parses the
// response. The response is untrusted text: anything that does not parse as
// JSON of the projection shape is rejected with ErrTranslationFormat.
func (c *OpenAIClient) Translate(ctx context.Context, projection *model.MenuTranslation, targetLanguage string) (*model.MenuTranslation, error) {
	payload, err := json.Marshal(projection)
	if err != nil {
		return nil, fmt.Errorf("failed to encode projection: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Translate the text values into %q:\n%s", targetLanguage, payload),
			},
		},
		Temperature: 0.2,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			c.logger.Warn().
				Str("language", targetLanguage).
				Dur("elapsed", time.Since(start)).
				Msg("translation call timed out")
			return nil, model.ErrTranslationTimeout
		}
		return nil, fmt.Errorf("translation service call failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", model.ErrTranslationFormat)
	}

	translated, err := ParseResponse(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("language", targetLanguage).
		Dur("elapsed", time.Since(start)).
		Msg("translation call completed")

	return translated, nil
}

// ParseResponse parses the raw completion text into a MenuTranslation.
// Code fences are stripped first since models wrap JSON in them despite
// instructions not to.
func ParseResponse(raw string) (*model.MenuTranslation, error) {
	text := strings.TrimSpace(raw)
	if after, ok := strings.CutPrefix(text, "```json"); ok {
		text = after
	} else if after, ok := strings.CutPrefix(text, "```"); ok {
		text = after
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	text = strings.TrimSpace(text)

	var translated model.MenuTranslation
	if err := json.Unmarshal([]byte(text), &translated); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrTranslationFormat, err)
	}
	return &translated, nil
}
