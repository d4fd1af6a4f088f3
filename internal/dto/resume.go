package dto

// PersonalInfo
// @Description Contact block of a résumé
type PersonalInfo struct {
	Name     string `json:"name"`
	Headline string `json:"headline"`
	Location string `json:"location"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// GenerateResumeRequest is the body of POST /api/resume/generate
// @Description Résumé source data
type GenerateResumeRequest struct {
	Personal   PersonalInfo `json:"personal"`
	Skills     []string     `json:"skills"`
	Projects   []string     `json:"projects"`
	Experience []string     `json:"experience"`
	Education  []string     `json:"education"`
	Template   string       `json:"template"`
}

// GenerateResumeResponse
// @Description Generated résumé text
type GenerateResumeResponse struct {
	Content  string `json:"content"`
	Template string `json:"template"`
}
