// Package kit holds transport-agnostic endpoint plumbing shared by the
// coursepack services: a typed request handler shape and adapters that
// expose it over concrete transports (currently MCP).
package kit

import "context"

// Endpoint is a transport-agnostic request handler. Adapters decode the
// transport's request into a typed value and hand it to the endpoint.
type Endpoint func(ctx context.Context, req any) (any, error)
