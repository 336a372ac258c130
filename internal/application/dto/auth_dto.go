package dto

// RegisterRequest entrada para registro: username, password y rol opcional
// (default customer; el password se hashea en el use case).
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=customer admin"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT y rol del usuario.
type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}
