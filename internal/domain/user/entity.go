package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleFinance  Role = "finance"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// User is an application login. A user may be linked to a Person record;
// service accounts (integrations, seeded admin) are not.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	PersonID     *string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Permission string

const (
	PermManagePeople      Permission = "people:manage"
	PermManageProjects    Permission = "projects:manage"
	PermManageFinance     Permission = "finance:manage"
	PermViewReports       Permission = "reports:view"
	PermRunImports        Permission = "imports:run"
	PermManageIntegration Permission = "integrations:manage"
)

var rolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermManagePeople, PermManageProjects, PermManageFinance,
		PermViewReports, PermRunImports, PermManageIntegration,
	},
	RoleFinance: {
		PermManageFinance, PermViewReports, PermRunImports,
	},
	RoleManager: {
		PermManagePeople, PermManageProjects, PermViewReports,
	},
	RoleEmployee: {},
}

func HasPermission(role Role, permission Permission) bool {
	for _, p := range rolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}
