// Package gemini provides Google Gemini implementations of the lawwatch
// Summarizer and TokenCounter.
package gemini

import (
	"context"
	"fmt"

	"github.com/fwojciec/lawwatch"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// systemInstruction frames the summary for the target audience: lawyers
// who want the legal crux of an article without reading it in full.
const systemInstruction = "As an expert in legal affairs, your task is to provide summaries of legal news articles for time-constrained attorneys in an engaging, conversational style. These summaries should highlight the critical legal aspects, relevant precedents, and implications of the issues discussed in the articles. The summary should be in 1 narrative paragraph and should not be longer than 100 words, but ensure they efficiently deliver the key legal insights, making them beneficial for quick comprehension. The end goal is to help the lawyers understand the crux of the articles without having to read them in their entirety."

// Ensure Summarizer implements lawwatch.Summarizer at compile time.
var _ lawwatch.Summarizer = (*Summarizer)(nil)

// Summarizer implements lawwatch.Summarizer using Google Gemini.
type Summarizer struct {
	client *genai.Client
}

// NewSummarizer creates a new Summarizer.
func NewSummarizer(client *genai.Client) *Summarizer {
	return &Summarizer{client: client}
}

// Summarize produces a one-paragraph legal summary of the article text.
func (s *Summarizer) Summarize(ctx context.Context, text string) (string, error) {
	if text == "" {
		return "", lawwatch.Errorf(lawwatch.EINVALID, "article text required")
	}

	config := BuildConfig()

	result, err := s.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildUserPrompt(text)}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", lawwatch.Errorf(lawwatch.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemInstruction}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt containing the article text.
func BuildUserPrompt(text string) string {
	return fmt.Sprintf("Here is an article to summarise:\n%s", text)
}
