package domain

type ResumeLanguage struct {
	AlumniEmail  string `json:"alumniEmail"`
	LanguageName string `json:"languageName"`
	MasteryLevel int32  `json:"masteryLevel"`
}

// ResumeExport is the data handed to the PDF template.
type ResumeExport struct {
	Email     string
	Names     string
	Surnames  string
	AboutMe   string
	Languages []ResumeLanguage
}
