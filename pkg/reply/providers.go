package reply

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// gemini calls the Generative Language REST endpoint.
type gemini struct {
	key  string
	http *http.Client
}

const geminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-1.5-flash:generateContent"

func (g *gemini) Name() string { return "gemini" }

func (g *gemini) Generate(ctx context.Context, prompt string) (string, error) {
	body := map[string]any{
		"contents": []map[string]any{
			{"parts": []map[string]string{{"text": prompt}}},
		},
	}
	var resp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	url := fmt.Sprintf("%s?key=%s", geminiEndpoint, g.key)
	if err := postJSON(ctx, g.http, url, nil, body, &resp); err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("reply: gemini returned no candidates")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

// openAI calls the chat completions endpoint.
type openAI struct {
	key  string
	http *http.Client
}

const openAIEndpoint = "https://api.openai.com/v1/chat/completions"

func (o *openAI) Name() string { return "openai" }

func (o *openAI) Generate(ctx context.Context, prompt string) (string, error) {
	body := map[string]any{
		"model": "gpt-3.5-turbo",
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
		"max_tokens":  150,
		"temperature": 0.7,
	}
	var resp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	headers := map[string]string{"Authorization": "Bearer " + o.key}
	if err := postJSON(ctx, o.http, openAIEndpoint, headers, body, &resp); err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("reply: openai returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// claude calls the Anthropic messages endpoint.
type claude struct {
	key  string
	http *http.Client
}

const claudeEndpoint = "https://api.anthropic.com/v1/messages"

func (c *claude) Name() string { return "claude" }

func (c *claude) Generate(ctx context.Context, prompt string) (string, error) {
	body := map[string]any{
		"model":      "claude-3-haiku-20240307",
		"max_tokens": 150,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
	}
	var resp struct {
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
	}
	headers := map[string]string{
		"x-api-key":         c.key,
		"anthropic-version": "2023-06-01",
	}
	if err := postJSON(ctx, c.http, claudeEndpoint, headers, body, &resp); err != nil {
		return "", err
	}
	if len(resp.Content) == 0 {
		return "", fmt.Errorf("reply: claude returned no content")
	}
	return resp.Content[0].Text, nil
}

func postJSON(ctx context.Context, client *http.Client, url string, headers map[string]string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("reply: %s returned %s: %s", url, resp.Status, string(data))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
