package entity

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type User struct {
	BaseSimple
	Name  string   `db:"name"`
	Email string   `db:"email"`
	Phone string   `db:"phone"`
	Role  UserRole `db:"role"`
}
