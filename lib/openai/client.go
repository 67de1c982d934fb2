package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/surveydisco-ai/backend/dto"
)

const extractionPrompt = `You extract structured data from land surveying project inquiries.
Respond with strict JSON only, no prose, using exactly these keys:
{"client","email","phone","preparedFor","address","parcel","area","serviceType","costEstimate"}
Use an empty string for any field the text does not contain.
serviceType must be one of: Boundary Survey, Topographic Survey, ALTA Survey,
Legal Description, Elevation Certificate, Subdivision, Survey, Quote Request,
Consultation, General Inquiry.`

// Client calls the chat completions endpoint for structured field extraction
type Client struct {
	BaseURL string
	APIKey  string
	Model   string
	HTTP    *http.Client
}

// NewClient builds a client from OPENAI_API_KEY / OPENAI_MODEL
func NewClient() *Client {
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-3.5-turbo"
	}
	return &Client{
		BaseURL: "https://api.openai.com/v1/chat/completions",
		APIKey:  os.Getenv("OPENAI_API_KEY"),
		Model:   model,
		HTTP:    &http.Client{Timeout: 60 * time.Second},
	}
}

// Configured reports whether an API key is available
func (c *Client) Configured() bool {
	return c.APIKey != ""
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// ExtractFields submits text to the extraction prompt and parses the
// model's JSON answer. Any failure returns an error; callers degrade to
// the regex extractor.
func (c *Client) ExtractFields(ctx context.Context, text string) (*dto.LLMExtraction, error) {
	if !c.Configured() {
		return nil, fmt.Errorf("OpenAI API key not available")
	}

	body, err := json.Marshal(chatRequest{
		Model: c.Model,
		Messages: []chatMessage{
			{Role: "system", Content: extractionPrompt},
			{Role: "user", Content: text},
		},
		Temperature: 0.1,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("openai returned status %d: %s", resp.StatusCode, payload)
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if len(out.Choices) == 0 {
		return nil, fmt.Errorf("openai returned no choices")
	}

	var extraction dto.LLMExtraction
	if err := json.Unmarshal([]byte(out.Choices[0].Message.Content), &extraction); err != nil {
		return nil, fmt.Errorf("malformed extraction JSON: %w", err)
	}
	return &extraction, nil
}
