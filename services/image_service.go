package services

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// SaveBase64Image decodes a base64 payload (with or without a data-URL
// prefix) into uploads/<subdir>/<name>.jpg and returns the path stored on the
// record. An empty name gets a random one. Writing over an existing file of
// the same name is deliberately tolerated: re-uploading under a stable key
// (e.g. "<userID>-avatar") just replaces the image.
func SaveBase64Image(b64, subdir, name string) (string, error) {
	if idx := strings.Index(b64, "base64,"); idx >= 0 {
		b64 = b64[idx+7:]
	}

	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return "", fmt.Errorf("decode base64: %w", err)
	}

	dir := filepath.Join("uploads", subdir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("mkdir uploads dir: %w", err)
	}

	if strings.TrimSpace(name) == "" {
		name = uuid.NewString()
	}

	filename := name + ".jpg"
	fullpath := filepath.Join(dir, filename)

	if err := os.WriteFile(fullpath, data, 0644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	return filepath.ToSlash(filepath.Join(subdir, filename)), nil
}
