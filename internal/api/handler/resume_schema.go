package handler

// --- Resume request types ---

type createResumeRequest struct {
	Title   string `json:"title"   validate:"required"`
	Content string `json:"content" validate:"required"`
}

type deleteResumeResponse struct {
	Message string `json:"message"`
}

// --- AI analysis request/response types ---

type analyzeRequest struct {
	ResumeContent string `json:"resume_content" validate:"required"`
}

type matchJobRequest struct {
	ResumeContent  string `json:"resume_content"  validate:"required"`
	JobDescription string `json:"job_description" validate:"required"`
}

// Tone is free-form; it lands in the rewrite prompt as-is and defaults to
// "professional" when empty.
type rewriteRequest struct {
	ResumeContent string `json:"resume_content" validate:"required"`
	Tone          string `json:"tone"`
}

type rewriteResponse struct {
	RewrittenContent string `json:"rewritten_content"`
}
