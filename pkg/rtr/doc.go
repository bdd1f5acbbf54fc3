// Package rtr provides types, interfaces, and helpers for working with the
// Realtime Register REST API.
//
// # Overview
//
// The rtr package defines the domain types (e.g., Domain, Contact, DNSZone,
// Certificate, Process) and the interfaces for resource-oriented clients
// (e.g., DomainsClient, CertificatesClient). A concrete implementation of
// these clients is provided by the rtrclient package, which wires
// configuration, transport, and authentication. Most consumers should import
// rtrclient to construct a client and then interact with the resource client
// interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/rtr/pkg/rtr"
//	  "github.com/fivetwenty-io/rtr/pkg/rtrclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := rtrclient.New(ctx, &rtr.Config{APIKey: "key", Customer: "handle"})
//	  if err != nil { log.Fatal(err) }
//
//	  // List the first page of domains
//	  domains, err := cli.Domains().List(ctx, rtr.NewListQuery().WithLimit(50))
//	  if err != nil { log.Fatal(err) }
//	  _ = domains
//	}
//
// # Queries
//
// ListQuery expresses the list options every collection supports (limit,
// offset, order, total, fields, q) plus field filters. Encode turns a query
// into ordered Params; filters with a matcher other than equality are sent
// as "field:matcher":
//
//	q := rtr.NewListQuery().
//	  WithLimit(25).
//	  OrderBy("-expiryDate").
//	  Where("expiryDate", rtr.MatcherLessThan, "2026-01-01").
//	  WhereIn("status", "OK", "CLIENT_TRANSFER_PROHIBITED")
//
// # Errors
//
// Error responses are classified into APIError values by the "type" field of
// the body. Each kind has a sentinel (ErrNotFound, ErrInsufficientCredit,
// ...) that works with errors.Is, and helpers such as IsNotFound,
// IsUnauthorized, and IsRateLimited cover the common cases. Responses without
// a recognized kind are returned as HTTPError.
//
// # Processes and quotes
//
// Mutating operations return a ProcessResponse carrying the process id from
// the response header. Billable operations have a Quote variant that asks
// the API for the price without executing the action.
//
// # Interceptors and caching
//
// The package includes generic building blocks such as request/response
// interceptors (for logging, auth headers, metrics, rate limiting, circuit
// breaking) and a pluggable Cache with memory and NATS key/value backends.
// Caching is limited to reference data such as TLD metadata, exchange rates,
// and price lists.
//
// # Batches
//
// BatchExecutor runs independent calls (availability checks, lookups,
// notification acknowledgements) with bounded concurrency and reports a
// result per operation.
package rtr
