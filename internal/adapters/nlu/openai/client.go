// Package openai wraps the chat completions endpoint as an intent
// classifier. Text understanding happens on the model side; this adapter
// only maps the raw reply into the Intent shape and validates it.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/srinivasagudi0/Stark-Assistant/internal/domain"
	"github.com/srinivasagudi0/Stark-Assistant/internal/ports"
)

const refAgain = "again"

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

var _ ports.Classifier = (*Client)(nil)

func NewClient(httpClient *http.Client, baseURL, apiKey, model string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
	}
}

func (c *Client) Classify(ctx context.Context, utterance string, hint string) (domain.Intent, error) {
	raw, err := c.complete(ctx, utterance, hint)
	if err != nil {
		return domain.Intent{}, err
	}

	return mapReply(raw)
}

func (c *Client) complete(ctx context.Context, utterance string, hint string) (string, error) {
	system := systemPrompt
	if hint != "" {
		system += "\n\nContext to remember:\n" + hint
	}

	body, err := json.Marshal(chatRequest{
		Model:       c.model,
		Temperature: 0,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: utterance},
		},
	})
	if err != nil {
		return "", fmt.Errorf("encode chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call chat completions: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read chat response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return "", fmt.Errorf("%w: authentication failed (401), configure the OpenAI API key", domain.ErrClassification)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: chat completions returned %d", domain.ErrClassification, resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("%w: decode chat response: %v", domain.ErrClassification, err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrClassification, parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("%w: chat response has no choices", domain.ErrClassification)
	}

	return parsed.Choices[0].Message.Content, nil
}

// mapReply validates the model's raw JSON reply against the Intent shape.
// The raw reply is tried as-is first; fence extraction is only a fallback,
// since brace scanning cannot see string contents and would truncate a
// valid payload containing "}".
func mapReply(raw string) (domain.Intent, error) {
	var reply replySchema
	if err := json.Unmarshal([]byte(raw), &reply); err != nil {
		if err := json.Unmarshal([]byte(extractJSON(raw)), &reply); err != nil {
			return domain.Intent{}, fmt.Errorf("%w: reply is not valid JSON: %v", domain.ErrClassification, err)
		}
	}

	switch domain.IntentKind(strings.ToUpper(strings.TrimSpace(reply.Type))) {
	case domain.KindAnswer:
		answer := ""
		if reply.Answer != nil {
			answer = *reply.Answer
		}
		return domain.Intent{Kind: domain.KindAnswer, Answer: answer}, nil

	case domain.KindAction:
		return mapAction(reply)

	default:
		return domain.Intent{}, fmt.Errorf("%w: unknown reply type %q", domain.ErrClassification, reply.Type)
	}
}

func mapAction(reply replySchema) (domain.Intent, error) {
	intent := domain.Intent{Kind: domain.KindAction}

	if reply.Filename != nil {
		intent.Target = *reply.Filename
	}
	intent.Payload = reply.Content

	if reply.Intent == nil || strings.TrimSpace(*reply.Intent) == "" || strings.EqualFold(*reply.Intent, "null") {
		// A bare "again" inherits the remembered verb downstream;
		// everything else needs an explicit verb.
		if strings.EqualFold(strings.TrimSpace(intent.Target), refAgain) {
			return intent, nil
		}
		return domain.Intent{}, fmt.Errorf("%w: action has no verb", domain.ErrUnknownVerb)
	}

	verb, err := domain.ParseVerb(*reply.Intent)
	if err != nil {
		return domain.Intent{}, err
	}
	intent.Verb = verb

	return intent, nil
}

// extractJSON returns the first balanced JSON object in the reply,
// tolerating markdown fences around it.
func extractJSON(raw string) string {
	start := strings.Index(raw, "{")
	if start == -1 {
		return raw
	}

	depth := 0
	for i := start; i < len(raw); i++ {
		switch raw[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return raw[start : i+1]
			}
		}
	}

	return raw[start:]
}
