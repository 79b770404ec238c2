package models

import (
	"encoding/base64"
	"fmt"
)

// EndpointTraffic is a raw row of the endpoint traffic table.
type EndpointTraffic struct {
	ServiceID   int
	Name        string
	DetectPoint DetectPoint
	TimeBucket  int64
}

// ID derives the logical endpoint identity. It is never persisted.
func (e EndpointTraffic) ID() string {
	return BuildEndpointID(e.ServiceID, e.Name, e.DetectPoint)
}

func BuildEndpointID(serviceID int, name string, detectPoint DetectPoint) string {
	return fmt.Sprintf("%d_%s_%d", serviceID, base64.StdEncoding.EncodeToString([]byte(name)), detectPoint.Value())
}
