package llm

import "fmt"

const analyzeSystem = "You are an expert ATS (Applicant Tracking System) analyzer. Analyze resumes and provide detailed feedback."

func analyzePrompt(resumeText string) string {
	return fmt.Sprintf(`Analyze this resume for ATS compatibility and provide a score from 0-100.

Resume Content:
%s

Provide your response in this JSON format:
{
    "score": <number between 0-100>,
    "strengths": ["list of strengths"],
    "weaknesses": ["list of weaknesses"],
    "suggestions": ["list of improvement suggestions"]
}

Return only valid JSON. Do not include explanations, markdown, or text before or after the JSON.`, resumeText)
}

const matchSystem = "You are an expert job matching system. Compare resumes with job descriptions."

func matchPrompt(resumeText, jobText string) string {
	return fmt.Sprintf(`Compare this resume with the job description and provide a match analysis.

Resume:
%s

Job Description:
%s

Provide response in JSON format:
{
    "match_percentage": <number 0-100>,
    "matching_skills": ["skills that match"],
    "missing_skills": ["skills required but missing"],
    "recommendations": ["suggestions to improve match"]
}

Return only valid JSON. Do not include explanations, markdown, or text before or after the JSON.`, resumeText, jobText)
}

func rewriteSystem(tone string) string {
	return fmt.Sprintf("You are an expert resume writer. Rewrite resumes to be more impactful with a %s tone.", tone)
}

func rewritePrompt(resumeText string) string {
	return fmt.Sprintf(`Rewrite this resume to make it more ATS-friendly and impactful. Maintain the same structure but improve the language, quantify achievements, and use strong action verbs.

Original Resume:
%s

Provide the rewritten resume in plain text format.`, resumeText)
}
