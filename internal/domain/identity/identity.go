package identity

type Role string

const (
	RoleManager Role = "manager"
	RoleTech    Role = "tech"
)

// Claims is the subset of the identity provider's session claims the
// application cares about. Role information arrives on two independent
// claims; either one naming a manager is sufficient.
type Claims struct {
	UserID             string
	Email              string
	PublicMetadataRole string
	OrgRole            string
}

// RoleOf derives the caller's role from the session claims. Manager wins
// when either claim says manager; everything else is a tech.
func RoleOf(claims Claims) Role {
	if claims.PublicMetadataRole == string(RoleManager) || claims.OrgRole == string(RoleManager) {
		return RoleManager
	}
	return RoleTech
}

// Identity is the resolved caller identity attached to every request.
// An unauthenticated caller still gets an Identity (role tech, no user);
// write paths are responsible for rejecting it.
type Identity struct {
	Authenticated bool
	UserID        string
	Email         string
	Role          Role
}

func (i Identity) IsManager() bool {
	return i.Role == RoleManager
}

// Anonymous is the identity attached to requests with no valid session.
func Anonymous() Identity {
	return Identity{Authenticated: false, Role: RoleTech}
}

// FromClaims resolves a full identity from verified session claims.
func FromClaims(claims Claims) Identity {
	return Identity{
		Authenticated: true,
		UserID:        claims.UserID,
		Email:         claims.Email,
		Role:          RoleOf(claims),
	}
}
