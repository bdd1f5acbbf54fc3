// Package rtrclient provides the primary entry point for constructing a
// yoursrs API client that implements the rtr.Client interface.
//
// It layers configuration, HTTP transport and authentication on top of the
// resource interfaces and types defined in the rtr package. Most applications
// should import rtrclient to build a client, then use the returned rtr.Client
// to access resource-specific clients, for example Domains(), Contacts(),
// Certificates(), etc.
//
// Quick start
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
//
//	  // Production with an API key; customer scopes /customers/{customer} paths.
//	  cli, err := rtrclient.NewWithAPIKey(ctx, "api-key", "acme")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or the test environment:
//	  cli, err = rtrclient.NewOTE(ctx, "api-key", "acme")
//
//	  // Or everything spelled out:
//	  cli, err = rtrclient.New(ctx, &rtr.Config{
//	    APIKey:    "api-key",
//	    Customer:  "acme",
//	    RateLimit: 5,
//	    Cache:     rtr.DefaultCacheConfig(),
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  query := rtr.NewListQuery().
//	    WithLimit(10).
//	    OrderBy("-expiryDate").
//	    Where("expiryDate", rtr.MatcherLessThan, "2026-01-01")
//
//	  domains, err := cli.Domains().List(ctx, query)
//	  if err != nil { log.Fatal(err) }
//	  _ = domains
//	}
//
// # Errors
//
// Failed requests return an *rtr.APIError whose Kind is derived from the
// HTTP status or the "type" member of the response body. Use errors.Is with
// the sentinel values (rtr.ErrNotFound, rtr.ErrInsufficientCredit, ...) or the
// predicates (rtr.IsNotFound, rtr.IsRateLimited, ...).
//
// # Helpers
//
// The package also provides convenience constructors NewWithAPIKey, NewOTE,
// and NewWithAuthorization that wrap New with the appropriate configuration.
package rtrclient
