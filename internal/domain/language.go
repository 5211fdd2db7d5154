package domain

// Language is a reference entity keyed by its name; resumes link to it
// through the resume_languages relation.
type Language struct {
	Name string `json:"name"`
}
