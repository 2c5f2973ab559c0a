package generation

// ApplicationMaterials is the set of tailored application answers produced in
// one generation call. Values are immutable once returned; individual fields
// may be replaced via the regenerate operation.
type ApplicationMaterials struct {
	InterestInCompany string `json:"interestInCompany"`
	CoverLetter       string `json:"coverLetter"`
	WhyFit            string `json:"whyFit"`
	ValueAdd          string `json:"valueAdd"`
	LinkedinSummary   string `json:"linkedinSummary"`
	ShortAnswer       string `json:"shortAnswer"`
}

// InterviewPrep holds suggested interview questions for the role.
type InterviewPrep struct {
	Questions []string `json:"questions"`
}

// Result is the combined output of the generate operation.
type Result struct {
	ApplicationMaterials ApplicationMaterials `json:"applicationMaterials"`
	InterviewPrep        InterviewPrep        `json:"interviewPrep"`
}

// Request carries the job posting details for one generation. It exists only
// for the duration of one invocation and is never persisted.
type Request struct {
	JobTitle       string
	Company        string
	TechStack      string
	Description    string
	CompanyDetails string
	ResumeText     string
}

// RegenerateData is the job context sent along with a single-field
// regeneration request.
type RegenerateData struct {
	JobTitle       string `json:"jobTitle"`
	Company        string `json:"company"`
	TechStack      string `json:"techStack"`
	Description    string `json:"description"`
	CompanyDetails string `json:"companyDetails"`
}
