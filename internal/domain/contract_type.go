package domain

type ContractType struct {
	Name string `json:"name"`
}
