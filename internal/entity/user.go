package entity

const (
	RoleAdmin          = "ADMIN"
	RoleRepresentative = "REPRESENTATIVE"
)

type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"` // ADMIN or REPRESENTATIVE
	FullName     string `json:"full_name"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
