package extraction

// ExtractedData is the structured record produced by the pipeline for one
// document. Scalar fields are empty strings when nothing matched; sequences
// are empty, never nil after extraction. The JSON key names are the contract
// consumed by the registry submission payload and must stay stable.
type ExtractedData struct {
	FullName   string       `json:"full_name"`
	Email      string       `json:"email"`
	Phone      string       `json:"phone"`
	Location   string       `json:"location"`
	Education  []Education  `json:"education"`
	Experience []Experience `json:"experience"`
	Skills     []string     `json:"skills"`
	RawText    string       `json:"raw_text,omitempty"`
}

// Education is one qualification line. An entry exists only if degree or
// institution was found on its originating line.
type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Year        string `json:"year"`
}

// Experience is one employment line. An entry exists only if company or role
// was found.
type Experience struct {
	Company  string `json:"company"`
	Role     string `json:"role"`
	Duration string `json:"duration"`
}
