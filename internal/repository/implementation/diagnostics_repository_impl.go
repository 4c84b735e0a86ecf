package implementation

import (
	"context"

	"notes-api/internal/repository/contract"

	"gorm.io/gorm"
)

type DiagnosticsRepositoryImpl struct {
	db *gorm.DB
}

func NewDiagnosticsRepository(db *gorm.DB) contract.DiagnosticsRepository {
	return &DiagnosticsRepositoryImpl{db: db}
}

func (r *DiagnosticsRepositoryImpl) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (r *DiagnosticsRepositoryImpl) Version(ctx context.Context) (string, error) {
	var version string
	if err := r.db.WithContext(ctx).Raw("SELECT version()").Scan(&version).Error; err != nil {
		return "", err
	}
	return version, nil
}
