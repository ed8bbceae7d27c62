package client

import (
	"context"

	"github.com/dmitrijs2005/cellarkeeper/internal/store"
)

// Client is the remote store as seen from the device.
type Client interface {
	store.Store
	LabelUploadURL(ctx context.Context, bottleID string) (key, url string, err error)
	Close() error
}
