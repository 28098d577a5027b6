package stub

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiAnswerer: 에이전트 질문을 Gemini로 답변
type GeminiAnswerer struct {
	client *genai.Client
	model  string
}

func NewGeminiAnswerer(apiKey string) (*GeminiAnswerer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("missing AI_API_KEY")
	}
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, err
	}
	return &GeminiAnswerer{client: client, model: "gemini-2.0-flash"}, nil
}

func (g *GeminiAnswerer) Answer(query string) (string, error) {
	prompt := "You are an SRE assistant answering questions about production incidents. " +
		"Answer concisely; mark the key findings with **bold**.\n\nQuestion: " + query

	res, err := g.client.Models.GenerateContent(context.Background(), g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	if res == nil || len(res.Candidates) == 0 {
		return "", fmt.Errorf("empty answer from model")
	}
	return res.Text(), nil
}
