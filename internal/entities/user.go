package entities

type Role string

const (
	RoleSystemAdmin Role = "SYSTEM_ADMIN"
	RoleSuperAdmin  Role = "SUPER_ADMIN"
	RoleManager     Role = "MANAGER"
	RoleCustomer    Role = "CUSTOMER"
)

func (r Role) Valid() bool {
	switch r {
	case RoleSystemAdmin, RoleSuperAdmin, RoleManager, RoleCustomer:
		return true
	}
	return false
}

// User is the authenticated actor. Authentication itself happens upstream;
// every service operation receives the actor explicitly.
type User struct {
	ID    int64
	Email string
	Role  Role
}

func (u User) IsCustomer() bool { return u.Role == RoleCustomer }

// CanManageSales covers the administrative roles allowed to drive a sale
// through its lifecycle.
func (u User) CanManageSales() bool {
	return u.Role == RoleSuperAdmin || u.Role == RoleManager
}
