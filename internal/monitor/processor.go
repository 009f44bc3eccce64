package monitor

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/aleister1102/siteeagle/internal/models"
)

// Fingerprint returns the lowercase hex SHA-256 of content's UTF-8 bytes.
func Fingerprint(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

// NewObservation fingerprints content fetched at fetchedAt.
func NewObservation(content string, fetchedAt time.Time) *models.Observation {
	return &models.Observation{
		Content:     content,
		Fingerprint: Fingerprint(content),
		FetchedAt:   fetchedAt,
	}
}
