// Package services implements the business logic layer of the metadata query
// service.
//
// Services sit between the HTTP handlers (and the CLI) and the store. They
// validate caller input, turn the store's raw answers into caller-facing
// results and fan out independent queries.
//
// # Service Dependency Graph
//
//	Handlers (HTTP) / CLI
//	    │
//	    ▼
//	MetadataService ──► MetadataReader (store.MetadataStore), Scheduler
//
// # MetadataService
//
// Most operations delegate straight to the store after validating the time
// window (start <= end, no negative bounds). Three add behavior:
//
// GetService:
//   - The store reports "no such service" as a nil value.
//   - The service turns it into ResourceNotFoundError so the handler can
//     answer 404.
//
// SearchEndpoints:
//
//	store.SearchEndpoint(limit) ──► up to 7 × limit traffic rows
//	        │
//	        ▼
//	dedupe by endpoint ID (first seen wins) ──► truncate to limit
//
// The result is best effort: when one endpoint dominates the traffic rows,
// fewer than limit distinct endpoints may be returned.
//
// GlobalBrief:
//
//	┌──────────────────────────────┬───────────────────────────────────┐
//	│  Field                       │  Store call                       │
//	├──────────────────────────────┼───────────────────────────────────┤
//	│  NumOfService                │  NumOfServices(tr)                │
//	│  NumOfEndpoint               │  NumOfEndpoints()                 │
//	│  NumOfDatabase               │  NumOfConjectural(Database)       │
//	│  NumOfCache                  │  NumOfConjectural(Cache)          │
//	│  NumOfMQ                     │  NumOfConjectural(MQ)             │
//	└──────────────────────────────┴───────────────────────────────────┘
//
// The five counts run on the shared scheduler. The first failure cancels
// the others and fails the whole brief.
//
// # Thread Safety
//
// MetadataService is stateless (it only holds the reader and the scheduler)
// and safe for concurrent use.
package services
