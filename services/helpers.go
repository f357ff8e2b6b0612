package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Dosada05/league-console/storage"
)

var (
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func publicURL(key *string, uploader storage.FileUploader) *string {
	if key == nil || *key == "" || uploader == nil {
		return nil
	}
	url := uploader.GetPublicURL(*key)
	if url == "" {
		return nil
	}
	return &url
}

func extensionFromContentType(contentType string) (string, error) {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg", nil
	case "image/png":
		return ".png", nil
	case "image/gif":
		return ".gif", nil
	case "image/webp":
		return ".webp", nil
	case "image/svg+xml":
		return ".svg", nil
	case "application/pdf":
		return ".pdf", nil
	default:
		parts := strings.Split(contentType, "/")
		if len(parts) == 2 && parts[0] == "image" && parts[1] != "" {
			return "." + strings.Split(parts[1], "+")[0], nil
		}
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFileType, contentType)
	}
}

func validDate(s string) bool { return datePattern.MatchString(s) }
func validTime(s string) bool { return timePattern.MatchString(s) }
