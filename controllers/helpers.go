package controllers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/5hjiwoo/foodrecommend/logger"
	"github.com/5hjiwoo/foodrecommend/middlewares"
)

// 32 MiB; gin's default multipart memory
const maxImageBytes = 32 << 20

func currentUserID(c *gin.Context) uint {
	return c.GetUint(middlewares.ContextUserID)
}

var errImageTooLarge = errors.New("image exceeds upload limit")

// readFile loads an uploaded file fully into memory. Files over
// maxImageBytes are rejected rather than cut short.
func readFile(fh *multipart.FileHeader) ([]byte, error) {
	if fh.Size > maxImageBytes {
		return nil, errImageTooLarge
	}
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, maxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if len(data) > maxImageBytes {
		return nil, errImageTooLarge
	}
	return data, nil
}

// uploadError answers a failed upload read; false means err was nil.
func uploadError(c *gin.Context, err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, errImageTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Image must be at most 32 MiB"})
	default:
		internalError(c, "Failed to read upload", err)
	}
	return true
}

// formImage returns the bytes and filename of the "image" multipart field.
// The error is http.ErrMissingFile when the field is absent.
func formImage(c *gin.Context) ([]byte, string, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		return nil, "", http.ErrMissingFile
	}
	data, err := readFile(fh)
	if err != nil {
		return nil, "", err
	}
	return data, fh.Filename, nil
}

func internalError(c *gin.Context, msg string, err error) {
	logger.Error(msg, "error", err, "path", c.FullPath(), "user_id", currentUserID(c))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
