// Package extract turns scores into note sequences. Extractors only read;
// the pattern miner never sees anything but the returned notes.
package extract

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/jsphweid/motifdex/model"
)

type Extractor interface {
	Extract(ctx context.Context) (model.Extraction, error)
}

var ErrUnsupportedMedia = errors.New("unsupported media type")

// ServiceError is a refusal reported by the extraction service itself, such
// as an unreadable score.
type ServiceError struct {
	Message string
}

func (e *ServiceError) Error() string {
	return "extraction service: " + e.Message
}

var mediaTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".gif":  "image/gif",
	".pdf":  "application/pdf",
}

func ImageMediaType(path string) (string, error) {
	mt, ok := mediaTypes[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return "", ErrUnsupportedMedia
	}
	return mt, nil
}

func IsSupportedMediaType(mt string) bool {
	for _, v := range mediaTypes {
		if v == mt {
			return true
		}
	}
	return false
}
