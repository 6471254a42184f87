package helpers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadKind names a storage destination. Each kind carries its own
// size limit and accepted content types, and files land under a
// subdirectory named after the kind.
type UploadKind string

const (
	UploadCompanyLogo          UploadKind = "company_logos"
	UploadExhibitionBanner     UploadKind = "exhibition_banners"
	UploadVerificationDocument UploadKind = "verification_documents"
)

type uploadRules struct {
	maxSizeBytes int64
	mimeTypes    []string
	basePath     string
}

var imageMimeTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

var uploadRulesByKind = map[UploadKind]uploadRules{
	UploadCompanyLogo: {
		maxSizeBytes: 5 * 1024 * 1024, // 5MB
		mimeTypes:    imageMimeTypes,
		basePath:     "./uploads/",
	},
	UploadExhibitionBanner: {
		maxSizeBytes: 5 * 1024 * 1024, // 5MB
		mimeTypes:    imageMimeTypes,
		basePath:     "./uploads/",
	},
	UploadVerificationDocument: {
		maxSizeBytes: 10 * 1024 * 1024, // 10MB
		mimeTypes: []string{
			"application/pdf",
			"application/msword",
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			"text/plain",
		},
		basePath: "./uploads/documents/",
	},
}

// UploadFile validates the upload against the kind's rules and stores
// it under a random name. The original filename is the caller's to
// record.
func UploadFile(c *gin.Context, fileHeader *multipart.FileHeader, kind UploadKind) (string, error) {
	rules, ok := uploadRulesByKind[kind]
	if !ok {
		return "", fmt.Errorf("unknown upload kind %q", kind)
	}

	if fileHeader.Size > rules.maxSizeBytes {
		return "", fmt.Errorf("file size exceeds maximum limit of %d MB", rules.maxSizeBytes/(1024*1024))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	buffer := make([]byte, 512)
	if _, err = src.Read(buffer); err != nil {
		return "", err
	}
	mimeType := http.DetectContentType(buffer)

	mimeTypeAllowed := false
	for _, allowedType := range rules.mimeTypes {
		if mimeType == allowedType {
			mimeTypeAllowed = true
			break
		}
	}
	if !mimeTypeAllowed {
		return "", fmt.Errorf("invalid file type. Allowed types: %v", rules.mimeTypes)
	}

	uploadPath := filepath.Join(rules.basePath, string(kind))
	if err := os.MkdirAll(uploadPath, os.ModePerm); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%s%s", uuid.New().String(), filepath.Ext(fileHeader.Filename))
	fullFilepath := filepath.Join(uploadPath, filename)

	if err := c.SaveUploadedFile(fileHeader, fullFilepath); err != nil {
		return "", err
	}

	return fullFilepath, nil
}

// DeleteFile removes a previously stored upload, for callers replacing
// a logo or banner. A missing file is not an error.
func DeleteFile(filePath string) error {
	err := os.Remove(filePath)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
