package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

const coachSystemPrompt = "You are a brutal, no-nonsense motivational coach. " +
	"The user is working toward this goal: %q. Your job is to give tough love, " +
	"call out excuses, and push them to take action. Be direct, firm, and " +
	"motivating without being mean or discouraging. Focus on action and " +
	"accountability. Keep responses under 100 words."

const (
	coachFallback      = "I can't coach you right now, but that's no excuse to stop working toward your goal!"
	coachEmptyFallback = "Stop making excuses and get to work!"
)

// CoachService generates "brutal coach" replies via an OpenAI-compatible
// chat completions endpoint. It never returns an error: any failure falls
// back to a canned line, because a broken coach must not break the app.
type CoachService struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

func NewCoachService(apiKey, model, baseURL string) *CoachService {
	return &CoachService{
		apiKey:  apiKey,
		model:   model,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Respond returns the coach's reply to a user message about the named goal.
func (s *CoachService) Respond(userMessage, goalName string) string {
	if s.apiKey == "" {
		return coachFallback
	}

	payload := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: fmt.Sprintf(coachSystemPrompt, goalName)},
			{Role: "user", Content: userMessage},
		},
		MaxTokens:   150,
		Temperature: 0.8,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return coachFallback
	}

	req, err := http.NewRequest(http.MethodPost, s.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return coachFallback
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("coach: request failed: %v", err)
		return coachFallback
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("coach: unexpected status %d", resp.StatusCode)
		return coachFallback
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		log.Printf("coach: decode failed: %v", err)
		return coachFallback
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return coachEmptyFallback
	}
	return parsed.Choices[0].Message.Content
}
