package domain

import "errors"

var (
	// ErrAnalysisFailed wraps upstream LLM or parse failures; the underlying
	// message is surfaced to the client as-is.
	ErrAnalysisFailed = errors.New("analysis failed")

	// ErrQuotaExceeded is returned when a user has spent their daily AI budget.
	ErrQuotaExceeded = errors.New("daily AI usage limit reached")
)

// ATSAnalysis is the structured verdict of an ATS compatibility check.
type ATSAnalysis struct {
	Score       float64  `json:"score"`
	Strengths   []string `json:"strengths"`
	Weaknesses  []string `json:"weaknesses"`
	Suggestions []string `json:"suggestions"`
}

// JobMatch scores a resume against a job description.
type JobMatch struct {
	MatchPercentage float64  `json:"match_percentage"`
	MatchingSkills  []string `json:"matching_skills"`
	MissingSkills   []string `json:"missing_skills"`
	Recommendations []string `json:"recommendations"`
}
