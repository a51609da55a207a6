package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"regexp"
	"time"

	"github.com/Nikhil8847/calify/models"
)

// Extractor turns a transcript into a structured meal record.
type Extractor interface {
	Extract(ctx context.Context, transcript string) (*ExtractedMeal, error)
}

// Macros is the macro breakdown of one extracted food item, in grams.
type Macros struct {
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

// ExtractedItem is one food item recovered from a meal description.
type ExtractedItem struct {
	Name              string  `json:"name"`
	Quantity          float64 `json:"quantity"`
	Unit              string  `json:"unit"`
	EstimatedWeightG  float64 `json:"estimated_weight_g"`
	Preparation       string  `json:"preparation"`
	EstimatedCalories float64 `json:"estimated_calories"`
	Macros            Macros  `json:"macros"`
}

// ExtractedMeal is the structured result of extraction. Ephemeral until a
// caller chooses to persist its items as calorie entries.
type ExtractedMeal struct {
	Meal          string          `json:"meal"`
	Items         []ExtractedItem `json:"items"`
	TotalCalories float64         `json:"total_calories"`
	Confidence    float64         `json:"confidence"`
}

const (
	modelConfidence   = 0.85
	keywordConfidence = 0.6
)

const extractionSystemPrompt = `You are a health and nutrition assistant helping users track their meals by analyzing transcripts from their voice input.

Extract a structured JSON object containing:

- meal: one of ["breakfast", "lunch", "dinner", "snack", "unknown"]
- items: list of food items the user consumed. Each item should include:
  - name: food name (standardized, e.g., "banana", "paneer")
  - quantity: number or estimated quantity
  - unit: "grams", "ml", "pieces", "bowl", "cup", etc.
  - estimated_weight_g: inferred weight in grams (for consistency)
  - preparation: "cooked", "raw", "boiled", "fried", etc.
  - estimated_calories
  - macros:
    - protein_g
    - carbs_g
    - fat_g

- total_estimated_calories: sum of calories

Use common nutrition knowledge (USDA-like DB).
If anything is vague (like "some rice"), estimate based on common serving sizes.

Return only valid JSON.`

// The model is told to return bare JSON but routinely fences it anyway.
var codeFenceRe = regexp.MustCompile("(?s)^```[a-zA-Z]*\n(.*?)\n?```$")

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// llmMeal is the exact schema the model is instructed to produce.
type llmMeal struct {
	Meal  string          `json:"meal"`
	Items []ExtractedItem `json:"items"`

	TotalEstimatedCalories float64 `json:"total_estimated_calories"`
}

// OpenAIService extracts structured nutrition data via chat completions,
// falling back to keyword extraction whenever the model is unavailable or its
// output does not parse. Extraction therefore degrades instead of failing.
type OpenAIService struct {
	apiKey   string
	baseURL  string
	model    string
	client   *http.Client
	fallback *KeywordExtractor
}

func NewOpenAIService() *OpenAIService {
	baseURL := os.Getenv("OPENAI_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-3.5-turbo"
	}
	return &OpenAIService{
		apiKey:   os.Getenv("OPENAI_API_KEY"),
		baseURL:  baseURL,
		model:    model,
		client:   &http.Client{Timeout: 30 * time.Second},
		fallback: NewKeywordExtractor(),
	}
}

func (s *OpenAIService) Extract(ctx context.Context, transcript string) (*ExtractedMeal, error) {
	meal, err := s.extractWithModel(ctx, transcript)
	if err != nil {
		log.Printf("model extraction failed, using keyword fallback: %v", err)
		return s.fallback.Extract(ctx, transcript)
	}
	return meal, nil
}

func (s *OpenAIService) extractWithModel(ctx context.Context, transcript string) (*ExtractedMeal, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("%w: OPENAI_API_KEY not configured", ErrServiceUnavailable)
	}

	payload := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: extractionSystemPrompt},
			{Role: "user", Content: "Transcription: " + transcript},
		},
		Temperature: 0.3,
		MaxTokens:   300,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal chat payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.baseURL+"/chat/completions", bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read chat response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: chat API error %d: %s", ErrServiceUnavailable, resp.StatusCode, string(body))
	}

	var cr chatResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return nil, fmt.Errorf("failed to parse chat JSON: %w", err)
	}
	if len(cr.Choices) == 0 {
		return nil, fmt.Errorf("%w: chat response had no choices", ErrParse)
	}

	return parseModelMeal(cr.Choices[0].Message.Content)
}

// parseModelMeal parses the model's reply into the expected schema, stripping
// a wrapping code fence first when present.
func parseModelMeal(reply string) (*ExtractedMeal, error) {
	raw := bytes.TrimSpace([]byte(reply))
	if m := codeFenceRe.FindSubmatch(raw); m != nil {
		raw = m[1]
	}

	var lm llmMeal
	if err := json.Unmarshal(raw, &lm); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if len(lm.Items) == 0 {
		return nil, fmt.Errorf("%w: model returned no items", ErrParse)
	}

	total := lm.TotalEstimatedCalories
	if total == 0 {
		for _, it := range lm.Items {
			total += it.EstimatedCalories
		}
	}

	meal := lm.Meal
	if meal != models.MealUnknown && !models.ValidMealType(meal) {
		meal = models.MealUnknown
	}

	return &ExtractedMeal{
		Meal:          meal,
		Items:         lm.Items,
		TotalCalories: total,
		Confidence:    modelConfidence,
	}, nil
}
