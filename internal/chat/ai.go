package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// completionRequest is the OpenAI-style chat completions payload.
type completionRequest struct {
	Model     string              `json:"model"`
	Messages  []completionMessage `json:"messages"`
	MaxTokens int                 `json:"max_tokens"`
}

type completionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionResponse struct {
	Choices []struct {
		Message completionMessage `json:"message"`
	} `json:"choices"`
}

// complete asks the configured AI endpoint for a reply.
func (r *Responder) complete(ctx context.Context, message string) (string, error) {
	system := fmt.Sprintf(
		"You are a friendly assistant on %s's portfolio website. Answer briefly and point visitors at the site's sections (About, Skills, Projects, Recommendations, Contact) where relevant.",
		r.cfg.SiteOwner,
	)

	payload, err := json.Marshal(completionRequest{
		Model: r.cfg.ChatAIModel,
		Messages: []completionMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: message},
		},
		MaxTokens: 300,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode AI request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.ChatAIURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build AI request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+r.cfg.ChatAIKey)

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("AI request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("AI endpoint returned %d: %s", resp.StatusCode, body)
	}

	var parsed completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode AI response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("AI response contained no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}
