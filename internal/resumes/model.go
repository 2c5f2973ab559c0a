package resumes

import (
	"encoding/json"
	"time"
)

// ContactInformation is the contact block of a parsed resume.
type ContactInformation struct {
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	Linkedin     string `json:"linkedin,omitempty"`
	PortfolioURL string `json:"portfolioUrl,omitempty"`
}

// Education is one education entry.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate,omitempty"`
}

// WorkExperience is one employment entry.
type WorkExperience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate,omitempty"`
	Description string `json:"description"`
}

// Skills splits extracted skills into technical and soft.
type Skills struct {
	TechnicalSkills []string `json:"technicalSkills"`
	SoftSkills      []string `json:"softSkills"`
}

// Project is one project entry.
type Project struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}

// Profile is the structured form a resume is parsed into. Dates stay as
// free-form strings since resumes rarely carry machine-parseable dates.
type Profile struct {
	FullName           string             `json:"fullName"`
	ContactInformation ContactInformation `json:"contactInformation"`
	Summary            string             `json:"summary,omitempty"`
	Education          []Education        `json:"education"`
	WorkExperience     []WorkExperience   `json:"workExperience"`
	Skills             Skills             `json:"skills"`
	Projects           []Project          `json:"projects"`
	Certifications     []string           `json:"certifications"`
	Languages          []string           `json:"languages"`
	Achievements       []string           `json:"achievements"`
}

// StoredResume is the persisted resume for a user: the profile JSON exactly as
// the client last saw it, plus the object-store key of the source PDF when one
// was uploaded. Profile bytes are stored and served verbatim.
type StoredResume struct {
	UserID    string          `json:"-"`
	Profile   json.RawMessage `json:"profile"`
	FileKey   string          `json:"fileKey,omitempty"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
