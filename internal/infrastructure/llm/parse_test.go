package llm

import "testing"

func TestStripFences(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"bare json", `{"score": 80}`, `{"score": 80}`},
		{"json fence", "```json\n{\"score\": 80}\n```", `{"score": 80}`},
		{"plain fence", "```\n{\"score\": 80}\n```", `{"score": 80}`},
		{"surrounding whitespace", "  \n{\"score\": 80}\n  ", `{"score": 80}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := stripFences(tc.input); got != tc.want {
				t.Fatalf("stripFences(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestParseATSAnalysis(t *testing.T) {
	reply := "```json\n" + `{
		"score": 78.5,
		"strengths": ["quantified impact"],
		"weaknesses": ["missing keywords"],
		"suggestions": ["add a skills section"]
	}` + "\n```"

	result, err := parseATSAnalysis(reply)
	if err != nil {
		t.Fatalf("parseATSAnalysis returned error: %v", err)
	}
	if result.Score != 78.5 {
		t.Fatalf("unexpected score: %v", result.Score)
	}
	if len(result.Strengths) != 1 || result.Strengths[0] != "quantified impact" {
		t.Fatalf("unexpected strengths: %v", result.Strengths)
	}
}

func TestParseATSAnalysis_BadJSON(t *testing.T) {
	if _, err := parseATSAnalysis("the resume looks fine to me"); err == nil {
		t.Fatalf("expected error for non-JSON reply")
	}
}

func TestParseATSAnalysis_ScoreOutOfRange(t *testing.T) {
	if _, err := parseATSAnalysis(`{"score": 250}`); err == nil {
		t.Fatalf("expected error for out-of-range score")
	}
	if _, err := parseATSAnalysis(`{"score": -3}`); err == nil {
		t.Fatalf("expected error for negative score")
	}
}

func TestParseJobMatch(t *testing.T) {
	reply := `{
		"match_percentage": 64,
		"matching_skills": ["Go", "MongoDB"],
		"missing_skills": ["Kubernetes"],
		"recommendations": ["mention container experience"]
	}`

	result, err := parseJobMatch(reply)
	if err != nil {
		t.Fatalf("parseJobMatch returned error: %v", err)
	}
	if result.MatchPercentage != 64 {
		t.Fatalf("unexpected percentage: %v", result.MatchPercentage)
	}
	if len(result.MatchingSkills) != 2 {
		t.Fatalf("unexpected matching skills: %v", result.MatchingSkills)
	}
}

func TestParseJobMatch_PercentageOutOfRange(t *testing.T) {
	if _, err := parseJobMatch(`{"match_percentage": 101}`); err == nil {
		t.Fatalf("expected error for out-of-range percentage")
	}
}
