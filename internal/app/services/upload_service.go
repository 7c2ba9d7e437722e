package services

import (
	"context"
	"fmt"
	"mime"
	"mime/multipart"
	"strings"

	"github.com/rtorralba/schooldesk/internal/app/models"
	"github.com/rtorralba/schooldesk/internal/app/models/dto"
	"github.com/rtorralba/schooldesk/internal/pkg/apperrors"
	"github.com/rtorralba/schooldesk/internal/pkg/filestorage"
	"github.com/rtorralba/schooldesk/internal/pkg/logger"
)

// MaxUploadSize is the upload size ceiling (10 MiB).
const MaxUploadSize = 10 << 20

// allowedUploadTypes maps accepted MIME types to the stored file extension.
var allowedUploadTypes = map[string]string{
	"image/jpeg":      ".jpg",
	"application/pdf": ".pdf",
}

// UploadStudentRepository is the persistence surface the upload service
// depends on.
type UploadStudentRepository interface {
	GetByStudentID(ctx context.Context, studentID string) (*models.Student, error)
	ReplaceFiles(ctx context.Context, studentID string, files []models.StudentFile) error
}

// UploadService handles student document uploads.
type UploadService interface {
	UploadStudentFile(ctx context.Context, studentID string, fileHeader *multipart.FileHeader) (*dto.UploadResponse, error)
}

// uploadServiceImpl implements the UploadService interface
type uploadServiceImpl struct {
	studentRepo UploadStudentRepository
	storage     filestorage.FileStorage
}

// NewUploadService creates a new upload service instance
func NewUploadService(studentRepo UploadStudentRepository, storage filestorage.FileStorage) UploadService {
	return &uploadServiceImpl{
		studentRepo: studentRepo,
		storage:     storage,
	}
}

// validateUpload rejects disallowed MIME types and oversized files before any
// storage or document mutation happens.
func validateUpload(fileHeader *multipart.FileHeader) (ext string, err error) {
	if fileHeader == nil {
		return "", apperrors.NewUploadRejectedError("no file provided")
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mediaType, _, parseErr := mime.ParseMediaType(mimeType); parseErr == nil {
		mimeType = mediaType
	}
	ext, ok := allowedUploadTypes[strings.ToLower(mimeType)]
	if !ok {
		return "", apperrors.NewUploadRejectedError(fmt.Sprintf("file type %q not allowed, only JPEG and PDF are accepted", mimeType))
	}

	if fileHeader.Size > MaxUploadSize {
		return "", apperrors.NewUploadRejectedError("file too large, maximum size is 10 MiB")
	}

	return ext, nil
}

// UploadStudentFile validates the file, stores it under the student's
// predictable download path and records its metadata on the student document.
// Each upload is an independent best-effort operation.
func (s *uploadServiceImpl) UploadStudentFile(ctx context.Context, studentID string, fileHeader *multipart.FileHeader) (*dto.UploadResponse, error) {
	if strings.TrimSpace(studentID) == "" {
		return nil, fmt.Errorf("%w: studentId is required", apperrors.ErrValidationFailed)
	}

	ext, err := validateUpload(fileHeader)
	if err != nil {
		return nil, err
	}

	student, err := s.studentRepo.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	storedName := studentID + "-download" + ext
	filePath, err := s.storage.SaveFileAs(fileHeader, storedName)
	if err != nil {
		return nil, fmt.Errorf("error storing uploaded file: %w", err)
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mediaType, _, parseErr := mime.ParseMediaType(mimeType); parseErr == nil {
		mimeType = mediaType
	}

	meta := models.StudentFile{
		Filename: fileHeader.Filename,
		FilePath: filePath,
		MimeType: strings.ToLower(mimeType),
		Size:     fileHeader.Size,
	}

	// A re-upload overwrites the stored file, so replace the metadata entry
	// pointing at the same path instead of accumulating duplicates.
	files := make([]models.StudentFile, 0, len(student.Files)+1)
	replaced := false
	for _, existing := range student.Files {
		if existing.FilePath == filePath {
			files = append(files, meta)
			replaced = true
			continue
		}
		files = append(files, existing)
	}
	if !replaced {
		files = append(files, meta)
	}

	if err := s.studentRepo.ReplaceFiles(ctx, studentID, files); err != nil {
		logger.Error().Err(err).Str("studentId", studentID).Msg("Stored file but failed to record metadata")
		// A brand-new file without a metadata entry would be orphaned, so
		// remove it. Re-uploads keep the overwritten file in place.
		if !replaced {
			if rmErr := s.storage.DeleteFile(filePath); rmErr != nil {
				logger.Warn().Err(rmErr).Str("path", filePath).Msg("Failed to remove orphaned upload")
			}
		}
		return nil, fmt.Errorf("error recording file metadata: %w", err)
	}

	return &dto.UploadResponse{
		FilePath: filePath,
		Filename: fileHeader.Filename,
		MimeType: meta.MimeType,
		Size:     fileHeader.Size,
	}, nil
}
