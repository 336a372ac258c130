package entity

import "time"

// User representa un usuario del sistema. Username es único; el rol solo
// cambia fuera de la API (no hay endpoint de promoción).
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         Role
	CreatedAt    time.Time
}
