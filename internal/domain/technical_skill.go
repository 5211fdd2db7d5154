package domain

type TechnicalSkill struct {
	Name string `json:"name"`
}
