package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/careerforge/resume-platform/internal/core/domain"
)

// stripFences removes a surrounding markdown code fence. Models occasionally
// wrap JSON replies in ```json blocks despite instructions not to.
func stripFences(input string) string {
	clean := strings.TrimSpace(input)

	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")
	clean = strings.TrimSuffix(clean, "```")

	return strings.TrimSpace(clean)
}

func parseATSAnalysis(reply string) (*domain.ATSAnalysis, error) {
	var result domain.ATSAnalysis
	if err := json.Unmarshal([]byte(stripFences(reply)), &result); err != nil {
		return nil, fmt.Errorf("decode analysis reply: %w", err)
	}
	if result.Score < 0 || result.Score > 100 {
		return nil, fmt.Errorf("analysis score out of range: %v", result.Score)
	}
	return &result, nil
}

func parseJobMatch(reply string) (*domain.JobMatch, error) {
	var result domain.JobMatch
	if err := json.Unmarshal([]byte(stripFences(reply)), &result); err != nil {
		return nil, fmt.Errorf("decode match reply: %w", err)
	}
	if result.MatchPercentage < 0 || result.MatchPercentage > 100 {
		return nil, fmt.Errorf("match percentage out of range: %v", result.MatchPercentage)
	}
	return &result, nil
}
