// Package uploads saves multipart image files under the served uploads
// directory and returns their public URLs.
package uploads

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
)

var unsafeChars = regexp.MustCompile(`[^\w\d\-_\.]`)

// SaveImage stores the uploaded file under <dir>/<subdir> with a sanitized,
// timestamped name and returns the public URL.
func SaveImage(c *gin.Context, file *multipart.FileHeader, dir, subdir, publicBaseURL string) (string, error) {
	cleanName := unsafeChars.ReplaceAllString(file.Filename, "_")
	filename := fmt.Sprintf("%d_%s", time.Now().UnixNano(), cleanName)

	saveDir := filepath.Join(dir, subdir)
	if err := os.MkdirAll(saveDir, 0755); err != nil {
		return "", fmt.Errorf("create upload folder: %w", err)
	}

	if err := c.SaveUploadedFile(file, filepath.Join(saveDir, filename)); err != nil {
		return "", fmt.Errorf("save file: %w", err)
	}

	return fmt.Sprintf("%s/uploads/%s/%s", publicBaseURL, subdir, filename), nil
}
