package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/conectafp/backend/internal/domain/entities"
	apperrors "github.com/conectafp/backend/internal/domain/errors"
	"github.com/conectafp/backend/internal/domain/ports"
	"github.com/conectafp/backend/internal/domain/repositories"
	"github.com/conectafp/backend/internal/pagination"
)

// UserRepository implementa repositories.UserRepository compondo o store
// persistente com o hasher de senhas.
type UserRepository struct {
	db     *gorm.DB
	hasher ports.PasswordHasher
}

// NewUserRepository cria um novo UserRepository
func NewUserRepository(db *gorm.DB, hasher ports.PasswordHasher) repositories.UserRepository {
	return &UserRepository{db: db, hasher: hasher}
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	db := r.getDB(ctx)
	if err := db.Model(&UserModel{}).Where("deleted = ?", false).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]*entities.User, error) {
	var models []*UserModel

	db := r.getDB(ctx)
	// Soft delete: ignorar linhas removidas
	if err := db.Where("deleted = ?", false).Order("id ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models)
}

func (r *UserRepository) FindAllPaginated(ctx context.Context, params pagination.Params) ([]*entities.User, error) {
	var models []*UserModel

	db := r.getDB(ctx)
	err := db.Where("deleted = ?", false).
		Order("id ASC").
		Limit(params.Limit).
		Offset(params.Offset()).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	return r.toEntities(models)
}

func (r *UserRepository) FindByID(ctx context.Context, id int) (*entities.User, error) {
	return r.findOne(ctx, "id = ? AND deleted = ?", id, false)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.findOne(ctx, "email = ? AND deleted = ?", email, false)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	return r.findOne(ctx, "username = ? AND deleted = ?", username, false)
}

// EmailUnique busca INCLUINDO linhas removidas: um email atribuído a uma
// conta removida continua bloqueado para reuso
func (r *UserRepository) EmailUnique(ctx context.Context, email string) (*entities.User, error) {
	return r.findOne(ctx, "email = ?", email)
}

// UsernameUnique busca apenas linhas ativas: um username removido pode
// ser reivindicado novamente
func (r *UserRepository) UsernameUnique(ctx context.Context, username string) (*entities.User, error) {
	return r.findOne(ctx, "username = ? AND deleted = ?", username, false)
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User, plainPassword string) error {
	hash, err := r.hasher.Hash(plainPassword)
	if err != nil {
		return err
	}

	now := time.Now()
	user.PasswordHash = hash
	user.CreatedAt = now
	user.LastSeenAt = now
	user.Deleted = false
	if user.Status == "" {
		user.Status = entities.StatusConnected
	}
	if user.ProfilePictureURL == nil {
		url := entities.DefaultProfilePictureURL(user.Name, user.Surname)
		user.ProfilePictureURL = &url
	}

	if err := user.Validate(); err != nil {
		return apperrors.NewValidationError(err)
	}

	model := r.toModel(user)
	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrConflict
		}
		return err
	}

	user.ID = model.ID
	return nil
}

func (r *UserRepository) Update(ctx context.Context, id int, changes repositories.UserChanges) (*entities.User, error) {
	values, err := r.toColumns(changes)
	if err != nil {
		return nil, err
	}

	db := r.getDB(ctx)
	if len(values) > 0 {
		// Semântica parcial: apenas as colunas presentes são tocadas.
		// A atualização endereça a linha pelo id cru, como o delete.
		result := db.Model(&UserModel{}).Where("id = ?", id).Updates(values)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
				return nil, apperrors.ErrConflict
			}
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, nil
		}
	}

	return r.findOne(ctx, "id = ?", id)
}

func (r *UserRepository) Delete(ctx context.Context, id int) (*entities.User, error) {
	db := r.getDB(ctx)
	// Soft delete: marcar a flag ao invés de remover. Idempotente: repetir
	// sobre uma linha já removida não é erro.
	result := db.Model(&UserModel{}).Where("id = ?", id).Update("deleted", true)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	return r.findOne(ctx, "id = ?", id)
}

func (r *UserRepository) UpdateStatus(ctx context.Context, id int, status entities.Status, lastSeen time.Time) error {
	db := r.getDB(ctx)
	return db.Model(&UserModel{}).
		Where("id = ? AND deleted = ?", id, false).
		Updates(map[string]any{
			"status":       string(status),
			"last_seen_at": lastSeen.Unix(),
		}).Error
}

// findOne busca uma única linha; ausência retorna (nil, nil)
func (r *UserRepository) findOne(ctx context.Context, query string, args ...any) (*entities.User, error) {
	var model UserModel

	db := r.getDB(ctx)
	if err := db.Where(query, args...).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

// getDB extrai DB do contexto (para suportar transações)
func (r *UserRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}

// toColumns converte UserChanges nas colunas a atualizar.
// Senha presente é re-hasheada antes de persistir; o plaintext nunca chega ao store.
func (r *UserRepository) toColumns(changes repositories.UserChanges) (map[string]any, error) {
	values := map[string]any{}

	if changes.Password != nil {
		hash, err := r.hasher.Hash(*changes.Password)
		if err != nil {
			return nil, err
		}
		values["password_hash"] = hash
	}
	if changes.Name != nil {
		values["name"] = *changes.Name
	}
	if changes.Surname != nil {
		values["surname"] = *changes.Surname
	}
	if changes.Username != nil {
		values["username"] = *changes.Username
	}
	if changes.Email != nil {
		values["email"] = *changes.Email
	}
	if changes.Town != nil {
		values["town"] = *changes.Town
	}
	if changes.DegreeID != nil {
		values["degree_id"] = *changes.DegreeID
	}
	if changes.BranchID != nil {
		values["branch_id"] = *changes.BranchID
	}
	if changes.RoleID != nil {
		values["role_id"] = *changes.RoleID
	}
	if changes.CompanyID != nil {
		values["company_id"] = *changes.CompanyID
	}
	if changes.Status != nil {
		values["status"] = string(*changes.Status)
	}
	if changes.ProfilePictureURL != nil {
		values["profile_picture_url"] = *changes.ProfilePictureURL
	}
	if changes.Bio != nil {
		values["bio"] = *changes.Bio
	}
	if changes.Phone != nil {
		values["phone"] = *changes.Phone
	}
	if changes.SeekingCompany != nil {
		values["seeking_company"] = *changes.SeekingCompany
	}
	if changes.Visible != nil {
		values["visible"] = *changes.Visible
	}

	return values, nil
}

// Conversores
func (r *UserRepository) toModel(user *entities.User) *UserModel {
	return &UserModel{
		ID:                user.ID,
		Name:              user.Name,
		Surname:           user.Surname,
		Username:          user.Username,
		Email:             user.Email,
		PasswordHash:      user.PasswordHash,
		Town:              user.Town,
		DegreeID:          user.DegreeID,
		BranchID:          user.BranchID,
		RoleID:            user.RoleID,
		CompanyID:         user.CompanyID,
		Status:            string(user.Status),
		ProfilePictureURL: user.ProfilePictureURL,
		Bio:               user.Bio,
		Phone:             user.Phone,
		LastSeenAt:        user.LastSeenAt.Unix(),
		SeekingCompany:    user.SeekingCompany,
		Visible:           user.Visible,
		CreatedAt:         user.CreatedAt.Unix(),
		Deleted:           user.Deleted,
	}
}

// toEntity valida o shape de toda linha que cruza a fronteira do store.
// Dados fora do shape viram ValidationError, nunca coerção silenciosa.
func (r *UserRepository) toEntity(model *UserModel) (*entities.User, error) {
	user := &entities.User{
		ID:                model.ID,
		Name:              model.Name,
		Surname:           model.Surname,
		Username:          model.Username,
		Email:             model.Email,
		PasswordHash:      model.PasswordHash,
		Town:              model.Town,
		DegreeID:          model.DegreeID,
		BranchID:          model.BranchID,
		RoleID:            model.RoleID,
		CompanyID:         model.CompanyID,
		Status:            entities.Status(model.Status),
		ProfilePictureURL: model.ProfilePictureURL,
		Bio:               model.Bio,
		Phone:             model.Phone,
		LastSeenAt:        time.Unix(model.LastSeenAt, 0),
		SeekingCompany:    model.SeekingCompany,
		Visible:           model.Visible,
		CreatedAt:         time.Unix(model.CreatedAt, 0),
		Deleted:           model.Deleted,
	}

	if err := user.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err)
	}

	return user, nil
}

func (r *UserRepository) toEntities(models []*UserModel) ([]*entities.User, error) {
	users := make([]*entities.User, 0, len(models))

	for _, model := range models {
		user, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, nil
}
