package domain

// Principal is the authenticated identity attached to a request by the
// authentication filter. It lives only for the duration of the request.
type Principal struct {
	Email       string
	Role        string
	Authorities []string
}

// NewPrincipal derives a Principal from a loaded user.
func NewPrincipal(u *User) *Principal {
	return &Principal{
		Email:       u.Email,
		Role:        u.Role,
		Authorities: []string{u.Role},
	}
}

// HasAuthority reports whether the principal carries the given authority.
func (p *Principal) HasAuthority(authority string) bool {
	for _, a := range p.Authorities {
		if a == authority {
			return true
		}
	}
	return false
}
