package postgres

// UserModel é o model GORM para usuários
type UserModel struct {
	ID           int    `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"type:varchar(255);not null"`
	Surname      string `gorm:"type:varchar(255);not null"`
	Username     string `gorm:"type:varchar(100);not null;uniqueIndex:idx_users_username_active,where:deleted = false"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Town         string `gorm:"type:varchar(255);not null"`
	DegreeID     *int   `gorm:"index"`
	BranchID     *int   `gorm:"index"`
	RoleID       *int   `gorm:"index"`
	CompanyID    *int   `gorm:"index"`
	Status       string `gorm:"type:varchar(20);not null"`
	// Foto de perfil, descrição e telefone são opcionais
	ProfilePictureURL *string `gorm:"type:varchar(500)"`
	Bio               *string `gorm:"type:text"`
	Phone             *string `gorm:"type:varchar(30)"`
	LastSeenAt        int64   `gorm:"not null"`
	SeekingCompany    bool    `gorm:"not null"`
	Visible           bool    `gorm:"not null"`
	CreatedAt         int64   `gorm:"autoCreateTime;index"`
	// Soft delete: flag booleana, nunca remoção física. O índice único de
	// username é parcial (apenas linhas ativas); o de email é global,
	// espelhando a assimetria das checagens de unicidade.
	Deleted bool `gorm:"not null;index"`
}

func (UserModel) TableName() string {
	return "users"
}
