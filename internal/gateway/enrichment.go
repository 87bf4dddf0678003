package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"ledger-reconciler/internal/domain"
)

const enrichmentPrompt = `You are an expert financial auditor. Review these reconciliation discrepancies between Bank Statement and General Ledger (Book).
For each item, identify the likely cause of the error (e.g., Typo, Digit Transposition, Missing VAT recording, Timing difference).
Return a JSON object with a single key "analysisResults": an array of objects with:
- id: the item ID.
- analysis: Brief explanation of the error (max 10 words).
- suggestedFix: Actionable recommendation (e.g., "Update Book amount to X").
- confidence: Number 0-1 indicating confidence level.

Data: %s`

// GeminiClient implements the usecase.EnrichmentClient interface against a
// Gemini-style generateContent endpoint.
type GeminiClient struct {
	baseURL string
	apiKey  string
	model   string
	httpc   *http.Client
	log     zerolog.Logger
}

// NewGeminiClient creates an enrichment client. baseURL carries no trailing
// slash, e.g. "https://generativelanguage.googleapis.com".
func NewGeminiClient(baseURL, apiKey, model string, log zerolog.Logger) *GeminiClient {
	return &GeminiClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		httpc:   &http.Client{Timeout: 60 * time.Second},
		log:     log,
	}
}

type generateContentRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string `json:"responseMimeType,omitempty"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

type analysisResult struct {
	ID           string  `json:"id"`
	Analysis     string  `json:"analysis"`
	SuggestedFix string  `json:"suggestedFix"`
	Confidence   float64 `json:"confidence"`
}

// Annotate asks the model for an explanation of each discrepant item and
// returns the annotations keyed by item identifier.
func (c *GeminiClient) Annotate(ctx context.Context, items []domain.EnrichmentItem) (map[string]domain.Annotation, error) {
	if len(items) == 0 {
		return map[string]domain.Annotation{}, nil
	}

	payload, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("failed to encode enrichment payload: %w", err)
	}

	reqBody, err := json.Marshal(generateContentRequest{
		Contents: []content{{Parts: []part{{Text: fmt.Sprintf(enrichmentPrompt, payload)}}}},
		GenerationConfig: &generationConfig{
			ResponseMIMEType: "application/json",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode enrichment request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to build enrichment request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	c.log.Debug().Int("items", len(items)).Str("model", c.model).Msg("requesting enrichment")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("enrichment call failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read enrichment response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("enrichment call returned status %d: %s", resp.StatusCode, body)
	}

	var gcResp generateContentResponse
	if err := json.Unmarshal(body, &gcResp); err != nil {
		return nil, fmt.Errorf("failed to decode enrichment response: %w", err)
	}
	if len(gcResp.Candidates) == 0 || len(gcResp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("enrichment response contained no candidates")
	}

	var verdict struct {
		AnalysisResults []analysisResult `json:"analysisResults"`
	}
	if err := json.Unmarshal([]byte(gcResp.Candidates[0].Content.Parts[0].Text), &verdict); err != nil {
		return nil, fmt.Errorf("failed to decode model verdict: %w", err)
	}

	annotations := make(map[string]domain.Annotation, len(verdict.AnalysisResults))
	for _, res := range verdict.AnalysisResults {
		annotations[res.ID] = domain.Annotation{
			Analysis:     res.Analysis,
			SuggestedFix: res.SuggestedFix,
			Confidence:   res.Confidence,
		}
	}
	return annotations, nil
}
