package services

import (
	"context"
	"time"

	"github.com/conectafp/backend/internal/domain/entities"
	"github.com/conectafp/backend/internal/domain/errors"
	"github.com/conectafp/backend/internal/domain/ports"
	"github.com/conectafp/backend/internal/domain/repositories"
	"github.com/conectafp/backend/internal/pagination"
)

// UserService contém a lógica de negócio para usuários
type UserService struct {
	userRepo repositories.UserRepository
	uow      ports.UnitOfWork
	logger   ports.Logger
}

// NewUserService cria um novo UserService
func NewUserService(
	userRepo repositories.UserRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *UserService {
	return &UserService{
		userRepo: userRepo,
		uow:      uow,
		logger:   logger,
	}
}

// Register cria um novo usuário após as checagens de unicidade.
// A checagem de email enxerga linhas removidas; a de username não.
// A sequência checagem → create não é atômica: o índice único do store é
// a decisão final e aparece como ErrConflict vindo do Create.
func (s *UserService) Register(ctx context.Context, user *entities.User, plainPassword string) (*entities.User, error) {
	s.logger.Info("registering user", "email", user.Email, "username", user.Username)

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.userRepo.EmailUnique(txCtx, user.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			return errors.ErrEmailTaken
		}

		existing, err = s.userRepo.UsernameUnique(txCtx, user.Username)
		if err != nil {
			return err
		}
		if existing != nil {
			return errors.ErrUsernameTaken
		}

		return s.userRepo.Create(txCtx, user, plainPassword)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "id", user.ID)
	return user, nil
}

// Get busca um usuário ativo por ID
func (s *UserService) Get(ctx context.Context, id int) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	return user, nil
}

// List retorna a página pedida junto com o bloco de paginação
func (s *UserService) List(ctx context.Context, params pagination.Params) ([]*entities.User, pagination.Metadata, error) {
	total, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, pagination.Metadata{}, err
	}

	users, err := s.userRepo.FindAllPaginated(ctx, params)
	if err != nil {
		return nil, pagination.Metadata{}, err
	}

	return users, params.Metadata(total), nil
}

// Update aplica uma atualização parcial, revalidando unicidade quando
// email ou username mudam
func (s *UserService) Update(ctx context.Context, id int, changes repositories.UserChanges) (*entities.User, error) {
	if changes.Email != nil {
		existing, err := s.userRepo.EmailUnique(ctx, *changes.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, errors.ErrEmailTaken
		}
	}

	if changes.Username != nil {
		existing, err := s.userRepo.UsernameUnique(ctx, *changes.Username)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, errors.ErrUsernameTaken
		}
	}

	user, err := s.userRepo.Update(ctx, id, changes)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}

	return user, nil
}

// Delete remove logicamente um usuário. Idempotente sobre linhas já removidas.
func (s *UserService) Delete(ctx context.Context, id int) (*entities.User, error) {
	user, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}

	s.logger.Info("user soft deleted", "id", id)
	return user, nil
}

// SetPresence registra o estado de presença e a última conexão do usuário
func (s *UserService) SetPresence(ctx context.Context, id int, status entities.Status, lastSeen time.Time) error {
	return s.userRepo.UpdateStatus(ctx, id, status, lastSeen)
}
