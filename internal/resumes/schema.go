package resumes

import (
	"fmt"

	"github.com/google/generative-ai-go/genai"
)

// profileSchema constrains the parse call to the structured resume shape.
// Optional contact and date fields are modeled as non-required string
// properties so the model emits empty strings rather than omitting keys.
func profileSchema() *genai.Schema {
	stringArray := func() *genai.Schema {
		return &genai.Schema{Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}}
	}
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"fullName": {Type: genai.TypeString},
			"contactInformation": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"email":        {Type: genai.TypeString},
					"phone":        {Type: genai.TypeString},
					"linkedin":     {Type: genai.TypeString},
					"portfolioUrl": {Type: genai.TypeString},
				},
				Required: []string{"email"},
			},
			"summary": {Type: genai.TypeString},
			"education": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"degree":      {Type: genai.TypeString},
						"institution": {Type: genai.TypeString},
						"startDate":   {Type: genai.TypeString},
						"endDate":     {Type: genai.TypeString},
					},
					Required: []string{"degree", "institution", "startDate"},
				},
			},
			"workExperience": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"title":       {Type: genai.TypeString},
						"company":     {Type: genai.TypeString},
						"startDate":   {Type: genai.TypeString},
						"endDate":     {Type: genai.TypeString},
						"description": {Type: genai.TypeString},
					},
					Required: []string{"title", "company", "startDate", "description"},
				},
			},
			"skills": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"technicalSkills": stringArray(),
					"softSkills":      stringArray(),
				},
				Required: []string{"technicalSkills", "softSkills"},
			},
			"projects": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"title":        {Type: genai.TypeString},
						"description":  {Type: genai.TypeString},
						"technologies": stringArray(),
					},
					Required: []string{"title", "description", "technologies"},
				},
			},
			"certifications": stringArray(),
			"languages":      stringArray(),
			"achievements":   stringArray(),
		},
		Required: []string{
			"fullName",
			"contactInformation",
			"education",
			"workExperience",
			"skills",
			"projects",
			"certifications",
			"languages",
			"achievements",
		},
	}
}

const parseSystemPrompt = `You are a specialized resume parsing assistant with expertise in extracting structured information from resume documents. Your core functions include:

1. Identifying and extracting key candidate information including personal details, education, work experience, skills, and achievements
2. Converting unstructured resume text into a precise, well-organized JSON format
3. Maintaining strict adherence to the provided schema specification
4. Making logical inferences when information is implicit rather than explicit
5. Categorizing skills appropriately between technical and soft skills
6. Standardizing date formats when possible
7. Preserving the factual integrity of the original document

Your responses must contain only valid JSON that matches the specified schema, with no explanatory text or markdown formatting. Ensure all fields are properly populated based on available information, using empty strings or arrays where information is absent.`

func parsePrompt(text string) string {
	return fmt.Sprintf(`Please extract and structure the following resume text into a standardized JSON format:

### RESUME TEXT
"""
%s
"""

Analyze this resume thoroughly and extract all relevant information into the structured JSON schema provided. When information is not explicitly stated but can be reasonably inferred, make appropriate inferences. When information is completely absent, use empty strings or arrays.

Return ONLY the JSON object with no additional text, explanations, or markdown formatting.`, text)
}
