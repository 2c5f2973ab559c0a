package generation

import "github.com/google/generative-ai-go/genai"

var materialsProperties = map[string]*genai.Schema{
	"interestInCompany": {Type: genai.TypeString},
	"coverLetter":       {Type: genai.TypeString},
	"whyFit":            {Type: genai.TypeString},
	"valueAdd":          {Type: genai.TypeString},
	"linkedinSummary":   {Type: genai.TypeString},
	"shortAnswer":       {Type: genai.TypeString},
}

// resultSchema constrains the generate call to the full materials + interview
// prep shape.
func resultSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"applicationMaterials": {
				Type:       genai.TypeObject,
				Properties: materialsProperties,
				Required: []string{
					"interestInCompany",
					"coverLetter",
					"whyFit",
					"valueAdd",
					"linkedinSummary",
					"shortAnswer",
				},
			},
			"interviewPrep": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"questions": {
						Type:  genai.TypeArray,
						Items: &genai.Schema{Type: genai.TypeString},
					},
				},
				Required: []string{"questions"},
			},
		},
		Required: []string{"applicationMaterials", "interviewPrep"},
	}
}

// regenerateSchema constrains a single-field regeneration to one content string.
func regenerateSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"content": {Type: genai.TypeString},
		},
		Required: []string{"content"},
	}
}
