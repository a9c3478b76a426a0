package output

import "context"

// Notifier announces roster changes to an external channel.
// Announcements are best effort: implementations log delivery failures
// instead of returning them, so a broken channel never fails a signup.
type Notifier interface {
	SignedUp(ctx context.Context, activityName, email string)
	Unregistered(ctx context.Context, activityName, email string)
}
