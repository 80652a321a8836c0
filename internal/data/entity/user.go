package entity

type UserRole string

const (
	RoleResident UserRole = "resident"
	RoleAdmin    UserRole = "admin"
)

type User struct {
	ID          int64    `db:"user_id"`
	Name        string   `db:"name"`
	HouseNumber *string  `db:"house_number"`
	Username    string   `db:"username"`
	Password    string   `db:"password"`
	Role        UserRole `db:"role"`
}
