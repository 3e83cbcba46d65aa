package model

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleCaptain Role = "captain"
)

// Principal is the authenticated identity behind a session: an Admin or a
// Captain, discriminated by Role. Exactly one of the two pointers is set.
type Principal struct {
	Role    Role
	Admin   *Admin
	Captain *Captain
}

func AdminPrincipal(a *Admin) Principal { return Principal{Role: RoleAdmin, Admin: a} }

func CaptainPrincipal(c *Captain) Principal { return Principal{Role: RoleCaptain, Captain: c} }

func (p Principal) ID() int {
	if p.Role == RoleAdmin {
		return p.Admin.ID
	}
	return p.Captain.ID
}

func (p Principal) Name() string {
	if p.Role == RoleAdmin {
		return p.Admin.Name
	}
	return p.Captain.Name
}

func (p Principal) Username() string {
	if p.Role == RoleAdmin {
		return p.Admin.Username
	}
	return p.Captain.Username
}

// HouseID is nil for admins; captains belong to exactly one house.
func (p Principal) HouseID() *int {
	if p.Role == RoleCaptain {
		return &p.Captain.HouseID
	}
	return nil
}
