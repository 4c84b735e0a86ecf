package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDiagnosticsRepository struct {
	pingErr    error
	version    string
	versionErr error
}

func (f *fakeDiagnosticsRepository) Ping(_ context.Context) error {
	return f.pingErr
}

func (f *fakeDiagnosticsRepository) Version(_ context.Context) (string, error) {
	return f.version, f.versionErr
}

func TestReady(t *testing.T) {
	svc := NewHealthService(&fakeDiagnosticsRepository{})
	assert.NoError(t, svc.Ready(context.Background()))

	svc = NewHealthService(&fakeDiagnosticsRepository{pingErr: errors.New("dial timeout")})
	assert.Error(t, svc.Ready(context.Background()))
}

func TestDatabaseVersion(t *testing.T) {
	svc := NewHealthService(&fakeDiagnosticsRepository{version: "PostgreSQL 16.3"})

	v, err := svc.DatabaseVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "PostgreSQL 16.3", v)
}
