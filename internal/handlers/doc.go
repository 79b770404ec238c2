// Package handlers implements the HTTP API layer of the metadata query service.
//
// Handlers parse and validate request parameters, call the services layer and
// map its answers onto api/v1 response types.
//
//	HTTP Request (Gin)
//	        │
//	        ▼
//	Handler (this package): parameter parsing, error mapping, model-to-API conversion
//	        │
//	        ▼
//	services.MetadataService
//
// # API Endpoints
//
// The routes and parameter types are generated by oapi-codegen from
// api/v1/openapi.yaml. Handler implements v1.ServerInterface and RegisterRoutes
// mounts it with v1.RegisterHandlersWithOptions:
//
//	handler.RegisterRoutes(router) // router is the /api/v1 group
//
// The generated wrapper binds path and query parameters and answers 400 when
// one is missing or malformed, before the handler runs. Time windows are passed
// as start and end query parameters in epoch milliseconds and are mandatory
// wherever a window applies.
//
//	┌────────┬─────────────────────────────┬───────────────────────────────────────┐
//	│ Method │ Endpoint                    │ Description                           │
//	├────────┼─────────────────────────────┼───────────────────────────────────────┤
//	│ GET    │ /brief                      │ Service/endpoint/db/cache/MQ counters │
//	│ GET    │ /services                   │ Services alive in window (?keyword)   │
//	│ GET    │ /services/count             │ Number of services alive in window    │
//	│ GET    │ /services/lookup?name=      │ Exact name lookup                     │
//	│ GET    │ /services/{id}/instances    │ Instances of a service in window      │
//	│ GET    │ /browser-services           │ Browser services alive in window      │
//	│ GET    │ /databases                  │ Conjectured databases                 │
//	│ GET    │ /endpoints?serviceId=       │ Server-side endpoints (?keyword&limit)│
//	│ GET    │ /endpoints/count            │ Number of server-side endpoints       │
//	│ GET    │ /node-types/{type}/count    │ Number of services of a node type     │
//	└────────┴─────────────────────────────┴───────────────────────────────────────┘
//
// # Error Handling
//
//	┌────────────────────────┬─────────────┬────────────────────────────┐
//	│ Error Type             │ HTTP Status │ Body                       │
//	├────────────────────────┼─────────────┼────────────────────────────┤
//	│ ValidationError        │ 400         │ error message              │
//	│ ResourceNotFoundError  │ 404         │ error message              │
//	│ anything else          │ 500         │ generic "failed to <op>"   │
//	└────────────────────────┴─────────────┴────────────────────────────┘
//
// Storage failures are logged with the "metadata_handler" logger; driver
// details never reach the response body.
//
// # Endpoint Search Limit
//
// limit defaults to 20 and is clamped to 1000. Non-positive values are
// rejected with 400.
package handlers
