// Package llm implements the AI proxy on top of the Gemini API. Every call
// is a stateless single turn: no conversation memory, no retries, no backoff.
package llm

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"github.com/careerforge/resume-platform/internal/core/domain"
)

// GeminiProvider satisfies ports.AnalysisProvider using one shared client.
type GeminiProvider struct {
	client *genai.Client
	model  string
	logger zerolog.Logger
}

func NewGeminiProvider(ctx context.Context, apiKey, model string, logger zerolog.Logger) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	return &GeminiProvider{client: client, model: model, logger: logger}, nil
}

func (p *GeminiProvider) Analyze(ctx context.Context, resumeText string) (*domain.ATSAnalysis, error) {
	reply, err := p.generate(ctx, analyzeSystem, analyzePrompt(resumeText), true)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrAnalysisFailed, err)
	}

	result, err := parseATSAnalysis(reply)
	if err != nil {
		p.logger.Error().Err(err).Msg("unparseable ATS analysis reply")
		return nil, fmt.Errorf("%w: %s", domain.ErrAnalysisFailed, err)
	}
	return result, nil
}

func (p *GeminiProvider) MatchJob(ctx context.Context, resumeText, jobText string) (*domain.JobMatch, error) {
	reply, err := p.generate(ctx, matchSystem, matchPrompt(resumeText, jobText), true)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrAnalysisFailed, err)
	}

	result, err := parseJobMatch(reply)
	if err != nil {
		p.logger.Error().Err(err).Msg("unparseable job match reply")
		return nil, fmt.Errorf("%w: %s", domain.ErrAnalysisFailed, err)
	}
	return result, nil
}

// Rewrite returns the model's plain-text reply verbatim.
func (p *GeminiProvider) Rewrite(ctx context.Context, resumeText, tone string) (string, error) {
	reply, err := p.generate(ctx, rewriteSystem(tone), rewritePrompt(resumeText), false)
	if err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrAnalysisFailed, err)
	}
	return reply, nil
}

func (p *GeminiProvider) generate(ctx context.Context, system, prompt string, jsonReply bool) (string, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		Temperature:       genai.Ptr(float32(0.2)),
	}
	if jsonReply {
		cfg.ResponseMIMEType = "application/json"
	}

	resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	return resp.Text(), nil
}
