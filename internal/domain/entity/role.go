package entity

// Role es el nivel de acceso de un usuario. Enumeración cerrada: cualquier
// string fuera de estas constantes se rechaza en ParseRole, nunca se compara
// texto libre en decisiones de autorización.
type Role string

// Roles válidos para User.
const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// ParseRole valida un string contra la enumeración. ok=false si no es un rol conocido.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleCustomer:
		return RoleCustomer, true
	case RoleAdmin:
		return RoleAdmin, true
	}
	return "", false
}

// String implementa fmt.Stringer.
func (r Role) String() string { return string(r) }
