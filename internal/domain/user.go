package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Papéis de operador. Apenas administradores podem disparar cron jobs
// manualmente; qualquer operador ativo pode aprovar ou descartar ações.
const (
	RoleAdmin    = 1
	RoleOperator = 2
)

// User é um operador do painel de otimização. A identidade do aprovador
// registrada em ProposedAction.ApprovedBy vem do e-mail do usuário.
type User struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Active       bool       `json:"active"`
	RoleID       int        `json:"role_id"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}

// Claims são os dados do operador embutidos no token JWT
type Claims struct {
	UserID     int
	UserName   string
	UserEmail  string
	UserActive bool
	UserRoleID int
	jwt.RegisteredClaims
}
