package domain

type IndustryOfInterest struct {
	Name string `json:"name"`
}
