package dto

// UploadResponse reports where an uploaded student file was stored.
type UploadResponse struct {
	FilePath string `json:"filePath" example:"/uploads/2024-00123-download.pdf"`
	Filename string `json:"filename" example:"report-card.pdf"`
	MimeType string `json:"mimeType" example:"application/pdf"`
	Size     int64  `json:"size" example:"524288"`
}
