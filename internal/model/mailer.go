package model

import "context"

// Mailer sends transactional email to a user's registered address.
// Delivery failures surface to the caller; there are no retries.
type Mailer interface {
	SendUsernameReminder(ctx context.Context, email, username string) error
	SendPasswordResetLink(ctx context.Context, email, resetToken string) error
}
