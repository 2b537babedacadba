package gateways

import "context"

type ContactRegistry interface {
	// AppendRoutingNumber appends a single value as a new row to the external
	// registry. No deduplication happens on either side.
	AppendRoutingNumber(ctx context.Context, value string) error
}
