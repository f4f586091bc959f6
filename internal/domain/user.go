package domain

// User represents a gym member.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	IDNumber string `json:"idNumber"` // National ID card number; unique across users
	DOB      string `json:"dob"`      // Date of birth, YYYY-MM-DD
}

// UserPatch describes a partial update to a User. Nil fields are left
// unchanged.
type UserPatch struct {
	Name     *string
	Surname  *string
	IDNumber *string
	DOB      *string
}

// Apply merges the patch into the user, field by field.
func (p UserPatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Surname != nil {
		u.Surname = *p.Surname
	}
	if p.IDNumber != nil {
		u.IDNumber = *p.IDNumber
	}
	if p.DOB != nil {
		u.DOB = *p.DOB
	}
}
