package service

import (
	"context"

	"github.com/vaultpass/vaultpass-web/internal/apiclient"
)

// API is the upstream REST client the services call. *apiclient.Client implements it.
type API interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Patch(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string, out any) error
	GetRaw(ctx context.Context, path string) (*apiclient.RawResponse, error)
}

var _ API = (*apiclient.Client)(nil)
