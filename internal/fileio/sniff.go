package fileio

import (
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// IsText reports whether the file content looks like text. Gzip inputs
// are reported as text since the pipeline decompresses them. Returns the
// detected MIME type alongside the verdict.
func IsText(path string) (bool, string, error) {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return false, "", err
	}

	mime := mtype.String()
	if IsGzipPath(path) && mime == "application/gzip" {
		return true, mime, nil
	}

	isText := strings.HasPrefix(mime, "text/") ||
		mime == "application/json" ||
		mime == "application/xml" ||
		mime == "application/javascript"

	return isText, mime, nil
}
