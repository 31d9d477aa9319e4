package client

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// MaxFileSize caps uploads at 10 MiB, matching the pinning service plan.
const MaxFileSize = 10 * 1024 * 1024

var (
	ErrFileTooLarge   = errors.New("file exceeds maximum upload size")
	ErrFileNotAllowed = errors.New("file type not supported")
)

// allowedFileTypes maps accepted MIME types to their extensions. A file
// passes when either its declared MIME type or its extension matches.
var allowedFileTypes = map[string][]string{
	"application/pdf":    {".pdf"},
	"image/jpeg":         {".jpg", ".jpeg"},
	"image/png":          {".png"},
	"application/msword": {".doc"},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {".docx"},
}

// ValidateFile checks an upload candidate before it is sent to the pinning
// service.
func ValidateFile(name string, size int64, mimeType string) error {
	if size > MaxFileSize {
		return fmt.Errorf("%w: limit is %d MB", ErrFileTooLarge, MaxFileSize/(1024*1024))
	}

	ext := strings.ToLower(filepath.Ext(name))
	for allowedMime, extensions := range allowedFileTypes {
		if mimeType == allowedMime {
			return nil
		}
		for _, allowedExt := range extensions {
			if ext == allowedExt {
				return nil
			}
		}
	}

	return fmt.Errorf("%w: upload PDF, JPG, PNG, DOC or DOCX files", ErrFileNotAllowed)
}
