package utils

import (
	"fmt"
	"io"
	"mime/multipart"

	"github.com/gin-gonic/gin"
)

// ReadFormFile reads an uploaded multipart file into memory and returns
// its bytes plus the declared content type. A missing file is reported
// as http.ErrMissingFile from gin.
func ReadFormFile(c *gin.Context, field string) ([]byte, string, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, "", err
	}
	return readFileHeader(header)
}

func readFileHeader(header *multipart.FileHeader) ([]byte, string, error) {
	f, err := header.Open()
	if err != nil {
		return nil, "", fmt.Errorf("open uploaded file %s: %w", header.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", fmt.Errorf("read uploaded file %s: %w", header.Filename, err)
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return data, contentType, nil
}
