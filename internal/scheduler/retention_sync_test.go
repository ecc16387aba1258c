package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/adserver-api/infrastructure/repository/mocks"
	"go.uber.org/mock/gomock"
)

func TestRetentionSyncService_cleanupImpressions(t *testing.T) {
	tests := []struct {
		name          string
		retentionDays int
		setup         func(repo *mocks.MockImpressionRepository)
		expectedRows  int64
	}{
		{
			name:          "Limpeza apaga agregados além da janela",
			retentionDays: 90,
			setup: func(repo *mocks.MockImpressionRepository) {
				repo.EXPECT().DeleteOlderThan(90).Return(int64(1234), nil)
			},
			expectedRows: 1234,
		},
		{
			name:          "Janela inválida não consulta o banco",
			retentionDays: 0,
			setup:         func(repo *mocks.MockImpressionRepository) {},
			expectedRows:  0,
		},
		{
			name:          "Erro do banco não atualiza o contador",
			retentionDays: 90,
			setup: func(repo *mocks.MockImpressionRepository) {
				repo.EXPECT().DeleteOlderThan(90).Return(int64(0), assert.AnError)
			},
			expectedRows: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockImpressionRepository(ctrl)
			tt.setup(repo)

			service := &RetentionSyncService{
				config:         RetentionSyncConfig{RetentionDays: tt.retentionDays},
				impressionRepo: repo,
			}

			service.cleanupImpressions()

			status := service.GetStatus()
			assert.Equal(t, tt.expectedRows, status["last_deleted_rows"])
			assert.Equal(t, false, status["sync_running"])
		})
	}
}
