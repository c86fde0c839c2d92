package utils

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewObjectName builds a collision resistant object name under prefix,
// keeping the original file extension.
func NewObjectName(prefix, fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	return fmt.Sprintf("%s/%d_%s%s", prefix, time.Now().Unix(), uuid.NewString(), ext)
}

// FileExt returns the lowercase extension of a file name.
func FileExt(fileName string) string {
	return strings.ToLower(filepath.Ext(fileName))
}
