package store

import "math"

// Inventory tables
const (
	tableServiceInventory         = "service_inventory"
	tableServiceInstanceInventory = "service_instance_inventory"
	tableEndpointTraffic          = "endpoint_traffic"
)

// Shared columns
const (
	colSequence      = "sequence"
	colName          = "name"
	colProperties    = "properties"
	colRegisterTime  = "register_time"
	colHeartbeatTime = "heartbeat_time"
	colServiceID     = "service_id"
)

// service_inventory
const (
	colIsAddress = "is_address"
	colNodeType  = "node_type"
)

// service_instance_inventory
const (
	colInstanceUUID = "instance_uuid"
)

// endpoint_traffic
const (
	colDetectPoint = "detect_point"
	colTimeBucket  = "time_bucket"
)

const (
	boolFalse = 0

	countColumn = "COUNT(*) AS num"

	// endpointFetchMultiplier over-fetches endpoint traffic rows so the caller
	// can deduplicate logical endpoints in memory instead of asking the
	// storage engine for a DISTINCT.
	endpointFetchMultiplier = 7
	// maxEndpointFetch keeps the rendered LIMIT within a signed BIGINT.
	maxEndpointFetch = math.MaxInt64

	// likeEscape is the ESCAPE character of keyword patterns.
	likeEscape = `\`
)
