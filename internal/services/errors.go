package services

import (
	"errors"

	"github.com/starmap-dev/starmap/internal/metrics"
	"github.com/starmap-dev/starmap/internal/models"
)

// rejected counts validation failures before handing the error back.
func rejected(err error) error {
	var ve *models.ValidationError
	if errors.As(err, &ve) {
		metrics.ValidationFailures.WithLabelValues(ve.Entity).Inc()
	}
	return err
}
