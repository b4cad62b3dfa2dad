// Package auth holds the operator session: which account is logged in, its
// role and the permissions that role grants. The backend owns authentication;
// this package only carries the result around explicitly, so no other package
// reaches for ambient state.
package auth

// Role is an account tier. Unknown roles grant nothing.
type Role string

const (
	RoleSuperAdmin Role = "superadmin"
	RoleAdmin      Role = "admin"
	RoleUser       Role = "user"
)

// Permission names one allowed action.
type Permission string

const (
	PermCreateUser Permission = "create_user"
	PermReadUser   Permission = "read_user"
	PermUpdateUser Permission = "update_user"
	PermDeleteUser Permission = "delete_user"

	PermCreateVictim Permission = "create_victim"
	PermReadVictim   Permission = "read_victim"
	PermUpdateVictim Permission = "update_victim"
	PermDeleteVictim Permission = "delete_victim"

	PermCreateAuthor Permission = "create_author"
	PermReadAuthor   Permission = "read_author"
	PermUpdateAuthor Permission = "update_author"
	PermDeleteAuthor Permission = "delete_author"

	PermViewDashboard Permission = "view_dashboard"
	PermPrintReports  Permission = "print_reports"
)

var allPermissions = []Permission{
	PermCreateUser, PermReadUser, PermUpdateUser, PermDeleteUser,
	PermCreateVictim, PermReadVictim, PermUpdateVictim, PermDeleteVictim,
	PermCreateAuthor, PermReadAuthor, PermUpdateAuthor, PermDeleteAuthor,
	PermViewDashboard, PermPrintReports,
}

// rolePermissions grants both admin tiers everything; regular operators get
// the questionnaire work but no account management.
var rolePermissions = map[Role][]Permission{
	RoleSuperAdmin: allPermissions,
	RoleAdmin:      allPermissions,
	RoleUser: {
		PermCreateVictim, PermReadVictim, PermUpdateVictim, PermDeleteVictim,
		PermCreateAuthor, PermReadAuthor, PermUpdateAuthor, PermDeleteAuthor,
		PermViewDashboard, PermPrintReports,
	},
}

// Grants reports whether role includes the permission.
func (r Role) Grants(p Permission) bool {
	for _, granted := range rolePermissions[r] {
		if granted == p {
			return true
		}
	}
	return false
}
