package driven

import (
	"context"
	"fmt"
	"io"

	"github.com/brandforge-labs/brandforge-cli/internal/core/domain"
)

// TriggerStatusError reports a non-2xx trigger response. Callers that
// tolerate specific statuses (some workflow versions acknowledge a
// long-running build with 408) can inspect Status via errors.As.
type TriggerStatusError struct {
	Status int
}

func (e *TriggerStatusError) Error() string {
	return fmt.Sprintf("trigger returned status %d", e.Status)
}

func (e *TriggerStatusError) Unwrap() error {
	return domain.ErrTriggerFailed
}

// WebhookTrigger issues one-way POSTs to the external automation
// platform. A trigger is fire-and-forget: success or failure is judged
// by HTTP status alone, and the response body is never interpreted as
// a result; results always arrive later through the datastore.
type WebhookTrigger interface {
	// Trigger serializes payload as a JSON body and POSTs it to
	// endpoint. query, if non-nil, is appended to the endpoint URL.
	Trigger(ctx context.Context, endpoint string, payload any, query map[string]string) error

	// TriggerForm POSTs fields as a multipart form.
	TriggerForm(ctx context.Context, endpoint string, fields map[string]string) error

	// TriggerFile POSTs fields plus one binary attachment read from r.
	TriggerFile(ctx context.Context, endpoint string, fields map[string]string, fileField, filename string, r io.Reader) error
}
