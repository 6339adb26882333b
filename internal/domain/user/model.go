package user

// Role identifies what kind of account a user holds. It is a closed
// enumeration; code dispatching on it must handle every constant.
type Role string

const (
	RolePatient  Role = "patient"
	RoleProvider Role = "provider"
	RoleNurse    Role = "nurse"
	RolePartner  Role = "partner"
	RoleAdmin    Role = "admin"
)

// Roles lists every valid role, in declaration order.
func Roles() []Role {
	return []Role{RolePatient, RoleProvider, RoleNurse, RolePartner, RoleAdmin}
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RolePatient, RoleProvider, RoleNurse, RolePartner, RoleAdmin:
		return true
	}
	return false
}

// User represents an account in the registry
type User struct {
	ID                string   `json:"id"`
	Email             string   `json:"email"`
	Role              Role     `json:"role"`
	FirstName         string   `json:"firstName,omitempty"`
	LastName          string   `json:"lastName,omitempty"`
	Phone             string   `json:"phone,omitempty"`
	Country           string   `json:"country,omitempty"`
	PreferredLanguage string   `json:"preferredLanguage,omitempty"`
	Languages         []string `json:"languages,omitempty"`
	PhotoURL          string   `json:"photoUrl,omitempty"`
	Verified          bool     `json:"isVerified"`
}

// SignInLanding maps a role to the path an authenticated user lands on
// after signing in. Total over the role enum.
func SignInLanding(r Role) string {
	switch r {
	case RoleAdmin:
		return "/admin"
	case RoleProvider:
		return "/provider/dashboard"
	case RolePatient, RoleNurse, RolePartner:
		return "/dashboard"
	}
	return "/dashboard"
}

// SignUpLanding maps a role to the path a freshly registered user lands
// on. Providers go through onboarding first.
func SignUpLanding(r Role) string {
	switch r {
	case RoleAdmin:
		return "/admin"
	case RoleProvider:
		return "/provider/onboarding"
	case RolePatient, RoleNurse, RolePartner:
		return "/dashboard"
	}
	return "/dashboard"
}
