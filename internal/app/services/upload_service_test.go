package services

import (
	"context"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rtorralba/schooldesk/internal/app/models"
	"github.com/rtorralba/schooldesk/internal/pkg/apperrors"
)

// fakeStorage records saves without touching the filesystem.
type fakeStorage struct {
	saved   map[string]string // storedName -> returned path
	saveErr error
}

func (f *fakeStorage) SaveFileAs(_ *multipart.FileHeader, storedName string) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	if f.saved == nil {
		f.saved = map[string]string{}
	}
	path := "/uploads/" + storedName
	f.saved[storedName] = path
	return path, nil
}

func (f *fakeStorage) DeleteFile(filePath string) error {
	for name, path := range f.saved {
		if path == filePath {
			delete(f.saved, name)
		}
	}
	return nil
}

// fakeUploadRepo tracks the student's file metadata list.
type fakeUploadRepo struct {
	student      *models.Student
	replaceCalls int
	replaceErr   error
}

func (f *fakeUploadRepo) GetByStudentID(_ context.Context, studentID string) (*models.Student, error) {
	if f.student == nil || f.student.StudentID != studentID {
		return nil, apperrors.ErrStudentNotFound
	}
	return f.student, nil
}

func (f *fakeUploadRepo) ReplaceFiles(_ context.Context, _ string, files []models.StudentFile) error {
	f.replaceCalls++
	if f.replaceErr != nil {
		return f.replaceErr
	}
	f.student.Files = files
	return nil
}

func uploadHeader(filename, contentType string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: filename,
		Size:     size,
		Header:   textproto.MIMEHeader{"Content-Type": []string{contentType}},
	}
}

func TestUploadStudentFile(t *testing.T) {
	ctx := context.Background()

	newFixture := func() (*fakeUploadRepo, *fakeStorage, UploadService) {
		repo := &fakeUploadRepo{student: &models.Student{
			ID:        1,
			StudentID: "2024-0001",
			Files:     []models.StudentFile{},
		}}
		storage := &fakeStorage{}
		return repo, storage, NewUploadService(repo, storage)
	}

	t.Run("jpeg upload", func(t *testing.T) {
		repo, storage, svc := newFixture()

		result, err := svc.UploadStudentFile(ctx, "2024-0001", uploadHeader("photo.jpeg", "image/jpeg", 2048))
		require.NoError(t, err)

		assert.Equal(t, "/uploads/2024-0001-download.jpg", result.FilePath)
		assert.Equal(t, "photo.jpeg", result.Filename)
		assert.Equal(t, "image/jpeg", result.MimeType)
		assert.Equal(t, int64(2048), result.Size)

		assert.Contains(t, storage.saved, "2024-0001-download.jpg")
		require.Len(t, repo.student.Files, 1)
		assert.Equal(t, "/uploads/2024-0001-download.jpg", repo.student.Files[0].FilePath)
	})

	t.Run("pdf upload with charset parameter", func(t *testing.T) {
		_, storage, svc := newFixture()

		result, err := svc.UploadStudentFile(ctx, "2024-0001", uploadHeader("form137.pdf", "application/pdf; charset=binary", 4096))
		require.NoError(t, err)

		assert.Equal(t, "/uploads/2024-0001-download.pdf", result.FilePath)
		assert.Equal(t, "application/pdf", result.MimeType)
		assert.Contains(t, storage.saved, "2024-0001-download.pdf")
	})

	t.Run("disallowed type is rejected before any mutation", func(t *testing.T) {
		repo, storage, svc := newFixture()

		_, err := svc.UploadStudentFile(ctx, "2024-0001", uploadHeader("notes.txt", "text/plain", 100))
		assert.ErrorIs(t, err, apperrors.ErrUploadRejected)
		assert.Empty(t, storage.saved, "nothing is stored")
		assert.Zero(t, repo.replaceCalls, "metadata is untouched")
	})

	t.Run("oversized file is rejected", func(t *testing.T) {
		repo, storage, svc := newFixture()

		_, err := svc.UploadStudentFile(ctx, "2024-0001", uploadHeader("big.pdf", "application/pdf", MaxUploadSize+1))
		assert.ErrorIs(t, err, apperrors.ErrUploadRejected)
		assert.Empty(t, storage.saved)
		assert.Zero(t, repo.replaceCalls)
	})

	t.Run("file at the exact size limit is accepted", func(t *testing.T) {
		_, _, svc := newFixture()

		_, err := svc.UploadStudentFile(ctx, "2024-0001", uploadHeader("limit.pdf", "application/pdf", MaxUploadSize))
		assert.NoError(t, err)
	})

	t.Run("unknown student", func(t *testing.T) {
		_, _, svc := newFixture()

		_, err := svc.UploadStudentFile(ctx, "2024-9999", uploadHeader("photo.jpeg", "image/jpeg", 100))
		assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	})

	t.Run("missing student id", func(t *testing.T) {
		_, _, svc := newFixture()

		_, err := svc.UploadStudentFile(ctx, " ", uploadHeader("photo.jpeg", "image/jpeg", 100))
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("metadata failure removes the orphaned file", func(t *testing.T) {
		repo, storage, svc := newFixture()
		repo.replaceErr = assert.AnError

		_, err := svc.UploadStudentFile(ctx, "2024-0001", uploadHeader("photo.jpeg", "image/jpeg", 100))
		require.Error(t, err)
		assert.Empty(t, storage.saved, "stored file is cleaned up when metadata cannot be recorded")
	})

	t.Run("re-upload replaces the metadata entry", func(t *testing.T) {
		repo, _, svc := newFixture()

		_, err := svc.UploadStudentFile(ctx, "2024-0001", uploadHeader("first.jpeg", "image/jpeg", 100))
		require.NoError(t, err)
		_, err = svc.UploadStudentFile(ctx, "2024-0001", uploadHeader("second.jpeg", "image/jpeg", 200))
		require.NoError(t, err)

		require.Len(t, repo.student.Files, 1, "same stored path keeps one entry")
		assert.Equal(t, "second.jpeg", repo.student.Files[0].Filename)
		assert.Equal(t, int64(200), repo.student.Files[0].Size)
	})

	t.Run("different extensions accumulate entries", func(t *testing.T) {
		repo, _, svc := newFixture()

		_, err := svc.UploadStudentFile(ctx, "2024-0001", uploadHeader("photo.jpeg", "image/jpeg", 100))
		require.NoError(t, err)
		_, err = svc.UploadStudentFile(ctx, "2024-0001", uploadHeader("form.pdf", "application/pdf", 200))
		require.NoError(t, err)

		assert.Len(t, repo.student.Files, 2)
	})
}
