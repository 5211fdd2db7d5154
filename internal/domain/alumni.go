package domain

// Alumni is the user-shaped projection of an alumni profile served by the
// read and page operations.
type Alumni struct {
	Email           string  `json:"email"`
	Names           string  `json:"names"`
	Surnames        string  `json:"surnames"`
	PasswordHash    string  `json:"-"`
	Address         *string `json:"address"`
	TelephoneNumber *string `json:"telephoneNumber"`
	IsVerified      bool    `json:"isVerified"`
}

// AlumniPatch is a partial update of the user fields behind an alumni
// profile; nil fields are left untouched.
type AlumniPatch struct {
	Email           *string
	Names           *string
	Surnames        *string
	Address         *string
	TelephoneNumber *string
}
