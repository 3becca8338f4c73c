package repositories

import (
	"context"
	"time"

	"github.com/conectafp/backend/internal/domain/entities"
	"github.com/conectafp/backend/internal/pagination"
)

// UserRepository define a interface para persistência de usuários.
// Todas as buscas padrão excluem linhas com soft delete; consultas que
// enxergam linhas removidas estão marcadas explicitamente.
// Buscas sem resultado retornam (nil, nil); o mapeamento para erro de
// domínio é responsabilidade do chamador.
type UserRepository interface {
	// Count conta as linhas não removidas
	Count(ctx context.Context) (int64, error)
	// FindAll retorna as linhas não removidas ordenadas por id ascendente
	FindAll(ctx context.Context) ([]*entities.User, error)
	// FindAllPaginated aplica offset/limit de pagination.Params sobre FindAll
	FindAllPaginated(ctx context.Context, params pagination.Params) ([]*entities.User, error)
	FindByID(ctx context.Context, id int) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	FindByUsername(ctx context.Context, username string) (*entities.User, error)
	// EmailUnique busca INCLUINDO linhas removidas: um email já atribuído
	// nunca pode ser reutilizado, mesmo por conta removida
	EmailUnique(ctx context.Context, email string) (*entities.User, error)
	// UsernameUnique busca excluindo linhas removidas: um username
	// removido pode ser reivindicado novamente
	UsernameUnique(ctx context.Context, username string) (*entities.User, error)
	// Create aplica hash na senha, carimba CreatedAt/LastSeenAt e deriva
	// a foto de perfil padrão quando ausente
	Create(ctx context.Context, user *entities.User, plainPassword string) error
	// Update aplica semântica parcial: campos ausentes ficam intactos;
	// senha presente é re-hasheada antes de persistir
	Update(ctx context.Context, id int, changes UserChanges) (*entities.User, error)
	// Delete marca Deleted=true; idempotente
	Delete(ctx context.Context, id int) (*entities.User, error)
	// UpdateStatus registra presença (status + última conexão)
	UpdateStatus(ctx context.Context, id int, status entities.Status, lastSeen time.Time) error
}

// UserChanges contém os campos de uma atualização parcial.
// Ponteiro nil significa "não tocar". Limitação documentada: campos anuláveis
// só podem ser sobrescritos com novo valor, nunca limpos para nulo.
type UserChanges struct {
	Name              *string
	Surname           *string
	Username          *string
	Email             *string
	Password          *string
	Town              *string
	DegreeID          *int
	BranchID          *int
	RoleID            *int
	CompanyID         *int
	Status            *entities.Status
	ProfilePictureURL *string
	Bio               *string
	Phone             *string
	SeekingCompany    *bool
	Visible           *bool
}
