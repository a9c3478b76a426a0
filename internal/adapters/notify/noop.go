package notify

import (
	"context"

	"mergington/internal/ports/output"
)

var _ output.Notifier = Noop{}

// Noop is the Notifier used when announcements are not configured.
type Noop struct{}

func (Noop) SignedUp(context.Context, string, string)     {}
func (Noop) Unregistered(context.Context, string, string) {}
