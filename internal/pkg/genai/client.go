// Package genai is a thin client for the Gemini generateContent REST API.
// Callers treat it as an opaque text-generation service; failures are meant
// to be recovered locally by the caller, never propagated to workflow state.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tracklight/timesheet-backend-go/internal/config"
)

type Client struct {
	httpClient *http.Client
	apiKey     string
	model      string
	baseURL    string
}

func NewClient(cfg config.GenAIConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		baseURL:    cfg.BaseURL,
	}
}

type Options struct {
	// GroundedSearch enables the google_search tool so the answer is grounded
	// in web results and carries sources.
	GroundedSearch bool
}

type Source struct {
	URI   string
	Title string
}

type Result struct {
	Text    string
	Sources []Source
}

// Request/response wire shapes, trimmed to the fields used.

type generatePart struct {
	Text string `json:"text,omitempty"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generateTool struct {
	GoogleSearch *struct{} `json:"google_search,omitempty"`
}

type generateRequest struct {
	Contents []generateContent `json:"contents"`
	Tools    []generateTool    `json:"tools,omitempty"`
}

type groundingWeb struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

type groundingChunk struct {
	Web *groundingWeb `json:"web,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []generatePart `json:"parts"`
		} `json:"content"`
		GroundingMetadata *struct {
			GroundingChunks []groundingChunk `json:"groundingChunks"`
		} `json:"groundingMetadata,omitempty"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Generate runs a single prompt through the model and returns the generated
// text plus any grounding sources, deduplicated by URI.
func (c *Client) Generate(ctx context.Context, prompt string, opts *Options) (Result, error) {
	if c.apiKey == "" {
		return Result{}, fmt.Errorf("genai: no API key configured")
	}

	reqBody := generateRequest{
		Contents: []generateContent{{Parts: []generatePart{{Text: prompt}}}},
	}
	if opts != nil && opts.GroundedSearch {
		reqBody.Tools = []generateTool{{GoogleSearch: &struct{}{}}}
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return Result{}, fmt.Errorf("genai: encode request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return Result{}, fmt.Errorf("genai: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("genai: call model: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return Result{}, fmt.Errorf("genai: read response: %w", err)
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Result{}, fmt.Errorf("genai: decode response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil {
			return Result{}, fmt.Errorf("genai: API error [%d]: %s", parsed.Error.Code, parsed.Error.Message)
		}
		return Result{}, fmt.Errorf("genai: unexpected status %d", resp.StatusCode)
	}
	if len(parsed.Candidates) == 0 {
		return Result{}, fmt.Errorf("genai: empty response")
	}

	var result Result
	for _, part := range parsed.Candidates[0].Content.Parts {
		result.Text += part.Text
	}

	if gm := parsed.Candidates[0].GroundingMetadata; gm != nil {
		seen := make(map[string]struct{})
		for _, chunk := range gm.GroundingChunks {
			if chunk.Web == nil || chunk.Web.URI == "" {
				continue
			}
			if _, dup := seen[chunk.Web.URI]; dup {
				continue
			}
			seen[chunk.Web.URI] = struct{}{}
			title := chunk.Web.Title
			if title == "" {
				title = chunk.Web.URI
			}
			result.Sources = append(result.Sources, Source{URI: chunk.Web.URI, Title: title})
		}
	}

	return result, nil
}
