package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-monitor-api/internal/domain"
	"github.com/vfg2006/ads-monitor-api/internal/usecases/archiving"
	archivingmocks "github.com/vfg2006/ads-monitor-api/internal/usecases/archiving/mocks"
	"go.uber.org/mock/gomock"
)

func TestCreateBackup(t *testing.T) {
	t.Run("Backup criado responde 201 com os metadados", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockArchiver := archivingmocks.NewMockArchiver(ctrl)
		mockArchiver.EXPECT().
			Backup().
			Return(&domain.BackupInfo{
				ID:        "a1b2c3",
				FileName:  "db_backup_20240601_000000.db",
				Size:      2048,
				CreatedAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local),
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/backup", nil)
		rec := httptest.NewRecorder()

		CreateBackup(mockArchiver).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), "db_backup_20240601_000000.db")
	})

	t.Run("Falha do backup responde 500 com código BKP_002", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockArchiver := archivingmocks.NewMockArchiver(ctrl)
		mockArchiver.EXPECT().Backup().Return(nil, archiving.ErrLiveDatabaseAbsent)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/backup", nil)
		rec := httptest.NewRecorder()

		CreateBackup(mockArchiver).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "BKP_002")
	})
}

func TestRestoreLatestBackup(t *testing.T) {
	t.Run("Sem backups responde 404 com código BKP_001", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockArchiver := archivingmocks.NewMockArchiver(ctrl)
		mockArchiver.EXPECT().RestoreLatest(gomock.Any()).Return(nil, archiving.ErrNoBackupFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/restore", nil)
		rec := httptest.NewRecorder()

		RestoreLatestBackup(mockArchiver).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "BKP_001")
	})

	t.Run("Restauração bem sucedida responde com o backup aplicado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockArchiver := archivingmocks.NewMockArchiver(ctrl)
		mockArchiver.EXPECT().
			RestoreLatest(gomock.Any()).
			Return(&domain.BackupInfo{FileName: "db_backup_20240601_000000.db"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/restore", nil)
		rec := httptest.NewRecorder()

		RestoreLatestBackup(mockArchiver).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "db_backup_20240601_000000.db")
	})
}

func TestRestoreFromUpload(t *testing.T) {
	multipartBody := func(t *testing.T, field string, content []byte) (*bytes.Buffer, string) {
		t.Helper()

		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		part, err := writer.CreateFormFile(field, "ads.db")
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		return body, writer.FormDataContentType()
	}

	t.Run("Upload válido restaura e responde 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		content := []byte("conteúdo do banco")

		mockArchiver := archivingmocks.NewMockArchiver(ctrl)
		mockArchiver.EXPECT().RestoreFromBytes(gomock.Any(), content).Return(nil)

		body, contentType := multipartBody(t, "file", content)
		req := httptest.NewRequest(http.MethodPost, "/v1/admin/restore/upload", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		RestoreFromUpload(mockArchiver).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Campo de arquivo ausente responde 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockArchiver := archivingmocks.NewMockArchiver(ctrl)

		body, contentType := multipartBody(t, "outro_campo", []byte("x"))
		req := httptest.NewRequest(http.MethodPost, "/v1/admin/restore/upload", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		RestoreFromUpload(mockArchiver).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "VAL_002")
	})

	t.Run("Corpo que não é multipart responde 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockArchiver := archivingmocks.NewMockArchiver(ctrl)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/restore/upload", bytes.NewReader([]byte("não é multipart")))
		rec := httptest.NewRecorder()

		RestoreFromUpload(mockArchiver).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "VAL_001")
	})
}
