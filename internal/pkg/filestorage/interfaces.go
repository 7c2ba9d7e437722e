package filestorage

import "mime/multipart"

// FileStorage defines the interface for storing uploaded student files.
type FileStorage interface {
	// SaveFileAs stores the uploaded file under the given name, replacing any
	// existing file with that name, and returns the accessible path.
	SaveFileAs(fileHeader *multipart.FileHeader, storedName string) (string, error)

	// DeleteFile removes a stored file by its accessible path. Deleting a
	// file that does not exist is not an error.
	DeleteFile(filePath string) error
}
