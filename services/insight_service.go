// services/insight_service.go
package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"menu-catalog/entity"
)

// Fallback texts. Generate always returns one of these or provider output,
// never an error.
const (
	InsightDisabledMsg    = "AI insights are disabled (no API key configured)."
	InsightNoDataMsg      = "No menu data to analyze."
	InsightNoOutputMsg    = "The AI provider returned no output."
	InsightUnavailableMsg = "AI insights are currently unavailable (provider error)."
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"

type InsightService struct {
	client  *http.Client
	apiKey  string
	model   string
	baseURL string
}

func NewInsightService(apiKey, model string) *InsightService {
	return &InsightService{
		client:  &http.Client{Timeout: 15 * time.Second},
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultGeminiBaseURL,
	}
}

// Only name, category and price are sent to the provider.
type menuSummary struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

type generatePart struct {
	Text string `json:"text"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generateRequest struct {
	Contents []generateContent `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content generateContent `json:"content"`
	} `json:"candidates"`
}

// Generate summarizes a page of menus into one analyst paragraph. Any
// provider failure degrades to a fixed fallback string; callers never see
// an error from this method.
func (s *InsightService) Generate(menus []entity.Menu) string {
	if s.apiKey == "" {
		return InsightDisabledMsg
	}
	if len(menus) == 0 {
		return InsightNoDataMsg
	}

	summary := make([]menuSummary, 0, len(menus))
	for _, m := range menus {
		summary = append(summary, menuSummary{
			Name:     m.Name,
			Category: m.Category,
			Price:    m.Price,
		})
	}

	data, err := json.Marshal(summary)
	if err != nil {
		log.Printf("insight: marshal summary: %v", err)
		return InsightUnavailableMsg
	}

	var prompt strings.Builder
	prompt.WriteString("Act as a professional restaurant data analyst.\n")
	prompt.WriteString("Analyze the following menu data (JSON): ")
	prompt.Write(data)
	prompt.WriteString("\n\nGive \"Menu Insights\" in one short paragraph covering:\n")
	prompt.WriteString("1. Category dominance.\n")
	prompt.WriteString("2. Price range.\n")
	prompt.WriteString("3. A promotional strategy recommendation.\n\n")
	prompt.WriteString("Get straight to the analysis without filler.")

	reqBody := generateRequest{
		Contents: []generateContent{
			{Parts: []generatePart{{Text: prompt.String()}}},
		},
	}
	body, _ := json.Marshal(reqBody)

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", s.baseURL, s.model)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		log.Printf("insight: build request: %v", err)
		return InsightUnavailableMsg
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("insight: provider request failed: %v", err)
		return InsightUnavailableMsg
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("insight: read provider response: %v", err)
		return InsightUnavailableMsg
	}
	if resp.StatusCode != http.StatusOK {
		log.Printf("insight: provider error (%d): %s", resp.StatusCode, respBytes)
		return InsightUnavailableMsg
	}

	var out generateResponse
	if err := json.Unmarshal(respBytes, &out); err != nil {
		log.Printf("insight: decode provider response: %v", err)
		return InsightUnavailableMsg
	}

	var text strings.Builder
	if len(out.Candidates) > 0 {
		for _, part := range out.Candidates[0].Content.Parts {
			text.WriteString(part.Text)
		}
	}
	result := strings.TrimSpace(text.String())
	if result == "" {
		return InsightNoOutputMsg
	}
	return result
}
