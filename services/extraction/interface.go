package extraction

import (
	"context"

	"profitpilot/models"
)

// Extractor turns free text (an email body or form row) into a structured
// booking request. Missing data is represented as nil fields, never as an
// error; only transport failure to a delegated service surfaces as an
// error.
type Extractor interface {
	Extract(ctx context.Context, raw string) (models.ExtractedRequest, error)
}
