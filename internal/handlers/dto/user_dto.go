package dto

import (
	"time"

	"github.com/conectafp/backend/internal/domain/entities"
	"github.com/conectafp/backend/internal/domain/repositories"
)

// CreateUserRequest representa a requisição para registrar um usuário
type CreateUserRequest struct {
	Name              string  `json:"name" binding:"required"`
	Surname           string  `json:"surname" binding:"required"`
	Username          string  `json:"username" binding:"required"`
	Email             string  `json:"email" binding:"required,email"`
	Password          string  `json:"password" binding:"required,min=8,max=72"`
	Town              string  `json:"town" binding:"required"`
	DegreeID          *int    `json:"degreeId"`
	BranchID          *int    `json:"branchId"`
	RoleID            *int    `json:"roleId"`
	CompanyID         *int    `json:"companyId"`
	Status            *string `json:"status" binding:"omitempty,oneof=connected disconnected"`
	ProfilePictureURL *string `json:"profilePictureUrl" binding:"omitempty,url"`
	Bio               *string `json:"bio"`
	Phone             *string `json:"phone"`
	SeekingCompany    *bool   `json:"seekingCompany"`
	Visible           *bool   `json:"visible"`
}

// ToEntity converte a requisição em entidade, aplicando os defaults de
// criação (status conectado, perfil visível, busca de empresa ativa)
func (r *CreateUserRequest) ToEntity() *entities.User {
	user := &entities.User{
		Name:              r.Name,
		Surname:           r.Surname,
		Username:          r.Username,
		Email:             r.Email,
		Town:              r.Town,
		DegreeID:          r.DegreeID,
		BranchID:          r.BranchID,
		RoleID:            r.RoleID,
		CompanyID:         r.CompanyID,
		ProfilePictureURL: r.ProfilePictureURL,
		Bio:               r.Bio,
		Phone:             r.Phone,
		Status:            entities.StatusConnected,
		SeekingCompany:    true,
		Visible:           true,
	}

	if r.Status != nil {
		user.Status = entities.Status(*r.Status)
	}
	if r.SeekingCompany != nil {
		user.SeekingCompany = *r.SeekingCompany
	}
	if r.Visible != nil {
		user.Visible = *r.Visible
	}

	return user
}

// UpdateUserRequest representa uma atualização parcial: campos ausentes
// ficam intactos. Senha presente será re-hasheada antes de persistir.
type UpdateUserRequest struct {
	Name              *string `json:"name"`
	Surname           *string `json:"surname"`
	Username          *string `json:"username"`
	Email             *string `json:"email" binding:"omitempty,email"`
	Password          *string `json:"password" binding:"omitempty,min=8,max=72"`
	Town              *string `json:"town"`
	DegreeID          *int    `json:"degreeId"`
	BranchID          *int    `json:"branchId"`
	RoleID            *int    `json:"roleId"`
	CompanyID         *int    `json:"companyId"`
	Status            *string `json:"status" binding:"omitempty,oneof=connected disconnected"`
	ProfilePictureURL *string `json:"profilePictureUrl" binding:"omitempty,url"`
	Bio               *string `json:"bio"`
	Phone             *string `json:"phone"`
	SeekingCompany    *bool   `json:"seekingCompany"`
	Visible           *bool   `json:"visible"`
}

// ToChanges converte a requisição no conjunto de colunas a atualizar
func (r *UpdateUserRequest) ToChanges() repositories.UserChanges {
	changes := repositories.UserChanges{
		Name:              r.Name,
		Surname:           r.Surname,
		Username:          r.Username,
		Email:             r.Email,
		Password:          r.Password,
		Town:              r.Town,
		DegreeID:          r.DegreeID,
		BranchID:          r.BranchID,
		RoleID:            r.RoleID,
		CompanyID:         r.CompanyID,
		ProfilePictureURL: r.ProfilePictureURL,
		Bio:               r.Bio,
		Phone:             r.Phone,
		SeekingCompany:    r.SeekingCompany,
		Visible:           r.Visible,
	}

	if r.Status != nil {
		status := entities.Status(*r.Status)
		changes.Status = &status
	}

	return changes
}

// UserResponse representa a resposta de um usuário. O hash de senha nunca
// sai pela fronteira HTTP.
type UserResponse struct {
	ID                int       `json:"id"`
	Name              string    `json:"name"`
	Surname           string    `json:"surname"`
	Username          string    `json:"username"`
	Email             string    `json:"email"`
	Town              string    `json:"town"`
	DegreeID          *int      `json:"degreeId"`
	BranchID          *int      `json:"branchId"`
	RoleID            *int      `json:"roleId"`
	CompanyID         *int      `json:"companyId"`
	Status            string    `json:"status"`
	ProfilePictureURL *string   `json:"profilePictureUrl,omitempty"`
	Bio               *string   `json:"bio,omitempty"`
	Phone             *string   `json:"phone,omitempty"`
	LastSeenAt        time.Time `json:"lastSeenAt"`
	SeekingCompany    bool      `json:"seekingCompany"`
	Visible           bool      `json:"visible"`
	CreatedAt         time.Time `json:"createdAt"`
}

// ToUserResponse converte uma entidade User para UserResponse
func ToUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:                user.ID,
		Name:              user.Name,
		Surname:           user.Surname,
		Username:          user.Username,
		Email:             user.Email,
		Town:              user.Town,
		DegreeID:          user.DegreeID,
		BranchID:          user.BranchID,
		RoleID:            user.RoleID,
		CompanyID:         user.CompanyID,
		Status:            string(user.Status),
		ProfilePictureURL: user.ProfilePictureURL,
		Bio:               user.Bio,
		Phone:             user.Phone,
		LastSeenAt:        user.LastSeenAt,
		SeekingCompany:    user.SeekingCompany,
		Visible:           user.Visible,
		CreatedAt:         user.CreatedAt,
	}
}

// ToUserResponses converte uma lista de entidades User para UserResponse
func ToUserResponses(users []*entities.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = ToUserResponse(user)
	}
	return responses
}
