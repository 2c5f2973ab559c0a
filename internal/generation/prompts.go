package generation

import (
	"fmt"
	"strings"
)

const generateSystemPrompt = `You are an expert job application specialist who crafts tailored application materials with precision and care. Your primary responsibilities are:

1. Analyze job descriptions and candidate resumes to identify key alignment points
2. Generate professional, compelling application materials that highlight relevant experience and skills
3. Maintain a natural, authentic voice that avoids generic language or clichés
4. Structure responses following the exact JSON schema specification
5. Ensure all content is factual, based only on the provided resume and job details
6. Adapt writing style to match industry expectations and company culture

You must always produce content that strictly adheres to the specified JSON schema without deviation. Your responses should be concise yet impactful, focusing on quality over quantity. Never include explanatory text outside the JSON structure.`

const regenerateSystemPrompt = `You are a professional job application content specialist who creates highly tailored application materials for job seekers. You excel at:

1. Analyzing resume details to identify relevant skills and experiences
2. Creating compelling, concise application content that highlights candidate strengths
3. Adapting writing style to match industry expectations and company culture
4. Producing content that is specific, evidence-based, and free of generic statements
5. Maintaining an authentic voice that resonates with hiring managers

Your responses must be provided as structured JSON following the exact schema specification. Each regenerated field should be polished, focused, and ready for immediate use in a job application.`

// generatePrompt builds the full-materials prompt from the (already trimmed)
// request fields.
func generatePrompt(req Request) string {
	return fmt.Sprintf(`I need you to generate tailored job application materials based on the following information:

### JOB DETAILS
- Title: %s
- Company: %s
- Tech Stack: %s
- Description: %s

### COMPANY INFORMATION
%s

### CANDIDATE RESUME
%s

Your task is to analyze both the job requirements and the candidate's qualifications to create application materials that effectively highlight relevant experience, demonstrate alignment with the role, and showcase the candidate's value proposition.

Generate content for each of the following sections:

1. INTEREST IN COMPANY: A brief, genuine statement (2-3 sentences) explaining why the candidate is interested in this specific company
2. COVER LETTER: A professional, complete cover letter (300-400 words) tailored to this position
3. WHY FIT: A concise explanation (100-150 words) of why the candidate is an excellent match for this role
4. VALUE ADD: A specific description (100-150 words) of the unique value the candidate would bring
5. LINKEDIN SUMMARY: A brief professional summary (1-2 paragraphs) suitable for LinkedIn or similar platforms
6. SHORT ANSWER: A concise response (50-75 words) to "Why are you interested in this position?"
7. INTERVIEW PREP: 5-7 potential interview questions based on the role requirements

Important: Return ONLY the JSON object with no additional text, explanations, or markdown formatting.`,
		req.JobTitle, req.Company, req.TechStack, req.Description, req.CompanyDetails, req.ResumeText)
}

// fieldTemplate encodes the per-field target length and content focus for a
// single-field regeneration.
type fieldTemplate struct {
	intro           string
	guidance        []string
	withDescription bool
}

var fieldTemplates = map[string]fieldTemplate{
	"interestInCompany": {
		intro: "Generate a compelling paragraph (2-4 sentences) expressing genuine interest in %[2]s.",
		guidance: []string{
			"Reference specific aspects of the company (mission, products, culture, or innovations)",
			"Connect the applicant's background to the company's values or direction",
			"Convey authentic enthusiasm without using generic phrases",
			"Be concise yet impactful",
		},
	},
	"coverLetter": {
		intro: "Create a professional cover letter (300-400 words) for a %[1]s position at %[2]s.",
		guidance: []string{
			"Open with a strong introduction that mentions the specific position",
			"Highlight 2-3 key qualifications from the resume that directly align with the job requirements",
			"Demonstrate knowledge of the company and why the applicant is interested",
			"Close with a clear call to action",
			"Maintain a professional yet personable tone throughout",
		},
		withDescription: true,
	},
	"whyFit": {
		intro: "Create a concise explanation (100-150 words) of why the applicant is an excellent match for the %[1]s role at %[2]s.",
		guidance: []string{
			"Identify 2-3 specific qualifications from the resume that directly address key job requirements",
			"Provide concrete examples or achievements that demonstrate these qualifications",
			"Connect the applicant's background to the company's needs or challenges",
			"Be confident without being arrogant",
		},
		withDescription: true,
	},
	"valueAdd": {
		intro: "Write a compelling paragraph (100-150 words) on the unique value the applicant brings to %[2]s as a %[1]s.",
		guidance: []string{
			"Focus on 1-2 distinctive strengths or experiences that set the applicant apart",
			"Emphasize tangible benefits the company would gain by hiring the applicant",
			"Connect these unique qualities to specific company needs or industry challenges",
			"Include quantifiable achievements or results when possible",
			"Be specific rather than generic",
		},
		withDescription: true,
	},
	"linkedinSummary": {
		intro: "Create a professional LinkedIn message (100-150 words) to connect with a hiring manager or recruiter at %[2]s regarding the %[1]s position.",
		guidance: []string{
			"Open with a professional greeting and brief introduction",
			"Clearly state interest in the specific position",
			"Highlight 1-2 key qualifications relevant to the role",
			"Show knowledge of the company to demonstrate genuine interest",
			"Close with a clear invitation to connect or discuss further",
			"Be concise, professional, and personable",
		},
	},
	"shortAnswer": {
		intro: "Create a concise response (1-2 sentences, maximum 50 words) explaining why the applicant is interested in the %[1]s position at %[2]s.",
		guidance: []string{
			"Be direct and focused on one key motivator",
			"Connect the applicant's background or career goals to this specific opportunity",
			"Reference something specific about the company or role",
			"Avoid generic statements that could apply to any company",
		},
	},
}

// buildPrompt returns the regeneration prompt for one named field. It is a
// pure function: each call produces a fresh string and no state is shared
// between requests. The second return is false for an unrecognized field.
func buildPrompt(field string, data RegenerateData, resume string) (string, bool) {
	tmpl, ok := fieldTemplates[field]
	if !ok {
		return "", false
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, tmpl.intro, data.JobTitle, data.Company)
	sb.WriteString("\n\nRESUME:\n")
	sb.WriteString(resume)
	sb.WriteString("\n\nJOB DETAILS:\n")
	fmt.Fprintf(&sb, "- Job Title: %s\n", data.JobTitle)
	fmt.Fprintf(&sb, "- Company: %s\n", data.Company)
	fmt.Fprintf(&sb, "- Company Description: %s\n", orNotProvided(data.CompanyDetails))
	fmt.Fprintf(&sb, "- Tech Stack: %s\n", orNotProvided(data.TechStack))
	if tmpl.withDescription {
		fmt.Fprintf(&sb, "- Job Description: %s\n", orNotProvided(data.Description))
	}
	sb.WriteString("\nYour response should:\n")
	for i, line := range tmpl.guidance {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, line)
	}
	sb.WriteString(`
Return only a JSON object with the structure: { "content": "your generated text here" }`)
	return sb.String(), true
}

func orNotProvided(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Not provided"
	}
	return s
}
