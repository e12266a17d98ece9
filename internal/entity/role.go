package entity

// Role identifies a participant in a match. The host always moves first.
type Role string

const (
	RoleHost     Role = "HOST"
	RoleOpponent Role = "OPPONENT"
)

// Mark returns the board mark owned by the role: X for the host, O for the
// opponent.
func (that Role) Mark() string {
	if that == RoleHost {
		return MarkX
	}
	return MarkO
}

func (that Role) Other() Role {
	if that == RoleHost {
		return RoleOpponent
	}
	return RoleHost
}

func (that Role) String() string {
	return string(that)
}

// ParseRole converts a wire value into a Role.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleHost:
		return RoleHost, true
	case RoleOpponent:
		return RoleOpponent, true
	default:
		return "", false
	}
}
