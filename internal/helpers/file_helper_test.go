package helpers

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

var pngBytes = append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 512)...)

func multipartUpload(t *testing.T, filename string, content []byte) (*gin.Context, *multipart.FileHeader) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write part: %v", err)
	}
	writer.Close()

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("POST", "/", body)
	c.Request.Header.Set("Content-Type", writer.FormDataContentType())

	fileHeader, err := c.FormFile("file")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	return c, fileHeader
}

func TestUploadFileStoresUnderKindDirectory(t *testing.T) {
	c, fh := multipartUpload(t, "logo.png", pngBytes)
	t.Cleanup(func() { os.RemoveAll("./uploads") })

	path, err := UploadFile(c, fh, UploadCompanyLogo)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if !strings.Contains(path, string(UploadCompanyLogo)) {
		t.Fatalf("expected path under %q, got %q", UploadCompanyLogo, path)
	}
	if strings.Contains(path, "logo.png") {
		t.Fatalf("stored name should be randomized, got %q", path)
	}
	if !strings.HasSuffix(path, ".png") {
		t.Fatalf("original extension should be kept, got %q", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
}

func TestUploadFileRejectsUnknownKind(t *testing.T) {
	c, fh := multipartUpload(t, "logo.png", pngBytes)

	if _, err := UploadFile(c, fh, UploadKind("avatars")); err == nil {
		t.Fatal("expected error for unknown upload kind")
	}
}

func TestUploadFileEnforcesKindMimeTypes(t *testing.T) {
	// An image is fine for a logo but not for a verification document.
	c, fh := multipartUpload(t, "doc.png", pngBytes)

	if _, err := UploadFile(c, fh, UploadVerificationDocument); err == nil {
		t.Fatal("expected image to be rejected for document upload")
	}
}

func TestUploadFileEnforcesKindSizeLimit(t *testing.T) {
	oversize := append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 6*1024*1024)...)
	c, fh := multipartUpload(t, "big.png", oversize)

	if _, err := UploadFile(c, fh, UploadCompanyLogo); err == nil {
		t.Fatal("expected oversize upload to be rejected")
	}
}

func TestDeleteFileMissingIsNoError(t *testing.T) {
	if err := DeleteFile("./uploads/nope/never-written.png"); err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
}
