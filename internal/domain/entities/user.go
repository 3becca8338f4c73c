package entities

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Status representa o estado de presença de um usuário
type Status string

const (
	StatusConnected    Status = "connected"
	StatusDisconnected Status = "disconnected"
)

// validate verifica o shape da entidade na fronteira de persistência
var validate = validator.New(validator.WithRequiredStructEnabled())

// User representa um usuário da rede
type User struct {
	ID                int       `validate:"-"`
	Name              string    `validate:"required"`
	Surname           string    `validate:"required"`
	Username          string    `validate:"required"`
	Email             string    `validate:"required,email"`
	PasswordHash      string    `validate:"required"`
	Town              string    `validate:"required"`
	DegreeID          *int      `validate:"-"`
	BranchID          *int      `validate:"-"`
	RoleID            *int      `validate:"-"`
	CompanyID         *int      `validate:"-"`
	Status            Status    `validate:"required,oneof=connected disconnected"`
	ProfilePictureURL *string   `validate:"omitempty,url"`
	Bio               *string   `validate:"-"`
	Phone             *string   `validate:"-"`
	LastSeenAt        time.Time `validate:"required"`
	SeekingCompany    bool      `validate:"-"`
	Visible           bool      `validate:"-"`
	CreatedAt         time.Time `validate:"required"`
	Deleted           bool      `validate:"-"`
}

// DefaultProfilePictureURL deriva a URL de avatar padrão a partir do nome,
// usada quando nenhuma foto é fornecida na criação. Determinística por (name, surname).
func DefaultProfilePictureURL(name, surname string) string {
	return fmt.Sprintf("https://ui-avatars.com/api/?uppercase=false&name=%s+%s", name, surname)
}

// IsDeleted verifica se o usuário foi removido logicamente
func (u *User) IsDeleted() bool {
	return u.Deleted
}

// SoftDelete marca o usuário como removido; a linha permanece no store
func (u *User) SoftDelete() {
	u.Deleted = true
}

// MarkConnected registra a presença do usuário
func (u *User) MarkConnected() {
	u.Status = StatusConnected
}

// MarkDisconnected registra a saída do usuário e o horário da última conexão
func (u *User) MarkDisconnected(lastSeen time.Time) {
	u.Status = StatusDisconnected
	u.LastSeenAt = lastSeen
}

// Validate valida o shape da entidade User. Dados fora do shape nunca são
// coagidos silenciosamente: o chamador recebe o erro de validação.
func (u *User) Validate() error {
	return validate.Struct(u)
}
