package domain

// Role enumerates login account roles.
type Role string

const (
	RoleAdministrator Role = "administrator"
	RoleUser          Role = "user"
)

// User is a login-capable account. Password holds the stored credential
// checksum, never the plaintext.
type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}
