package auth

// Roles assigned at registration. Owners manage their restaurants;
// admins moderate the platform.
const (
	RoleOwner = "OWNER"
	RoleAdmin = "ADMIN"
)

// User is the domain entity.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     string
}
