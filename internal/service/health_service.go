package service

import (
	"context"
	"time"

	"notes-api/internal/repository/contract"
)

type IHealthService interface {
	// Ready reports whether a pooled database connection can be acquired.
	Ready(ctx context.Context) error
	DatabaseVersion(ctx context.Context) (string, error)
}

type healthService struct {
	diagRepo contract.DiagnosticsRepository
}

func NewHealthService(diagRepo contract.DiagnosticsRepository) IHealthService {
	return &healthService{
		diagRepo: diagRepo,
	}
}

func (s *healthService) Ready(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	return s.diagRepo.Ping(ctx)
}

func (s *healthService) DatabaseVersion(ctx context.Context) (string, error) {
	return s.diagRepo.Version(ctx)
}
