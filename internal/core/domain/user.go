package domain

// UserRole is the role a directory user holds within their store.
type UserRole string

const (
	RoleManager UserRole = "MANAGER"
	RoleStaff   UserRole = "STAFF"
)

// User is a directory entry: an employee with an account, keyed by identifier
// and scoped to one store. The scheduling core consumes the directory only to
// resolve known-employee assignments and caller identity.
type User struct {
	UserID       string   `json:"userID"`
	Username     string   `json:"username"`
	PasswordHash string   `json:"-"`
	FullName     string   `json:"fullName"`
	StoreID      string   `json:"store"`
	Role         UserRole `json:"role"`
	AuditFields
}
