// Package openai implements the question-generation client against the
// OpenAI chat completions API.
package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"

	"github.com/Gopirudra-hub/MindMark/internal/generation"
)

type Client struct {
	httpClient       *resty.Client
	model            string
	maxRetryAttempts uint
}

func NewClient(apiKey, model string, retryAttempts uint) *Client {
	client := resty.New()
	client.SetBaseURL("https://api.openai.com/v1")
	client.SetHeader("Authorization", "Bearer "+apiKey)
	client.SetHeader("Content-Type", "application/json")

	return &Client{
		httpClient:       client,
		model:            model,
		maxRetryAttempts: retryAttempts,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

type ChatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float32   `json:"temperature,omitempty"`
}

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

type ChatCompletionResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

type Choice struct {
	Index        int           `json:"index"`
	Message      ChoiceMessage `json:"message"`
	FinishReason string        `json:"finish_reason"`
}

type ChoiceMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	if strings.Contains(errStr, "json.Unmarshal") || strings.Contains(errStr, "unexpected end of JSON input") {
		return true
	}
	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}
	if strings.Contains(errStr, "response error 5") {
		return true
	}
	if strings.Contains(errStr, "response error 429") {
		return true
	}
	return false
}

const systemPrompt = `You are a quiz author that writes questions testing whether a reader retained the key ideas of a saved article.

GOAL
Return ONLY a JSON array of question objects. Each object has:
- "type": one of "mcq", "short", "scenario", "flashcard"
- "question": the question text
- "options": an array of 3-4 answer options, ONLY for "mcq" questions
- "correct_answer": the correct answer text; for "mcq" it must be one of the options verbatim
- "explanation": one or two sentences explaining the answer (optional)
- "difficulty": one of "easy", "medium", "hard"

RULES
- Mix the question types; prefer at least one mcq.
- Questions must be answerable from the provided content alone.
- Short and scenario answers should be a phrase or sentence, not a single word.
- Flashcard answers should be a short term or phrase.
- No text outside the JSON array.`

// GenerateQuestions implements the generation.Client interface
func (client *Client) GenerateQuestions(
	ctx context.Context,
	params generation.GenerateQuestionsRequest,
) (generation.GenerateQuestionsResponse, error) {
	var result generation.GenerateQuestionsResponse
	if err := retry.Do(
		func() error {
			response, err := client.generateQuestions(ctx, params)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			result = response
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	); err != nil {
		return generation.GenerateQuestionsResponse{}, err
	}
	return result, nil
}

func (client *Client) generateQuestions(
	ctx context.Context,
	params generation.GenerateQuestionsRequest,
) (generation.GenerateQuestionsResponse, error) {
	if params.Content == "" {
		return generation.GenerateQuestionsResponse{}, fmt.Errorf("no content to generate questions from")
	}

	count := params.QuestionCount
	if count <= 0 {
		count = 5
	}
	userMessage := fmt.Sprintf("Write %d quiz questions for this article.\n\nTitle: %s\nURL: %s\n\nContent:\n%s",
		count, params.Title, params.URL, params.Content)

	requestBody := ChatCompletionRequest{
		Model:       client.model,
		Temperature: 0.3,
		Messages: []Message{
			{Role: RoleSystem, Content: systemPrompt},
			{Role: RoleUser, Content: userMessage},
		},
	}

	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(requestBody).
		SetResult(&ChatCompletionResponse{}).
		Post("/chat/completions")
	if err != nil {
		return generation.GenerateQuestionsResponse{}, fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return generation.GenerateQuestionsResponse{}, fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	responseBody := response.Result().(*ChatCompletionResponse)
	if responseBody == nil || len(responseBody.Choices) == 0 {
		return generation.GenerateQuestionsResponse{}, fmt.Errorf("empty response body or choices: %s", response.String())
	}

	content := responseBody.Choices[0].Message.Content
	if content == "" {
		return generation.GenerateQuestionsResponse{}, fmt.Errorf("empty response content: %s", response.String())
	}
	slog.Default().Debug("openai response content",
		"request", requestBody,
		"response", responseBody,
	)

	var decoded []generation.RawQuestion
	if err := json.NewDecoder(strings.NewReader(content)).Decode(&decoded); err != nil {
		slog.Default().Error("Failed to parse OpenAI response as JSON",
			"request", requestBody,
			"error", err)
		return generation.GenerateQuestionsResponse{}, fmt.Errorf("json.Unmarshal(%s) > %w", content, err)
	}
	return generation.GenerateQuestionsResponse{Questions: decoded}, nil
}
