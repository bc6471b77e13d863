package notifications

import (
	"context"
	"net/url"

	"simai/pkg/simai"
	"simai/validation"
)

const pathCheck = "/api/notifications/check"

type InterfaceRepository interface {
	Check(ctx context.Context, since float64) ([]Notification, error)
}

type Repository struct {
	Client *simai.Client
}

func NewNotificationsRepository(client *simai.Client) *Repository {
	return &Repository{Client: client}
}

// Check asks for notifications newer than since. The HTTP status is not
// inspected; a body that is not an array of notifications is an error.
func (r *Repository) Check(ctx context.Context, since float64) ([]Notification, error) {
	query := url.Values{"since": {validation.FormatTimestamp(since)}}
	resp, err := r.Client.Get(ctx, pathCheck, query)
	if err != nil {
		return nil, err
	}

	var result []Notification
	if err := resp.Decode(&result); err != nil {
		return nil, err
	}
	return result, nil
}
