package v1

import (
	"github.com/apmstack/metadata-query/internal/models"
)

func NewServiceFromModel(s models.Service) Service {
	return Service{Id: s.ID, Name: s.Name}
}

func NewServicesFromModel(services []models.Service) []Service {
	out := make([]Service, 0, len(services))
	for _, s := range services {
		out = append(out, NewServiceFromModel(s))
	}
	return out
}

func NewDatabasesFromModel(databases []models.Database) []Database {
	out := make([]Database, 0, len(databases))
	for _, d := range databases {
		out = append(out, Database{Id: d.ID, Name: d.Name, Type: d.Type})
	}
	return out
}

func NewEndpointsFromModel(endpoints []models.Endpoint) []Endpoint {
	out := make([]Endpoint, 0, len(endpoints))
	for _, e := range endpoints {
		out = append(out, Endpoint{Id: e.ID, Name: e.Name})
	}
	return out
}

// NewServiceInstancesFromModel keeps the attribute order of each instance.
func NewServiceInstancesFromModel(instances []models.ServiceInstance) []ServiceInstance {
	out := make([]ServiceInstance, 0, len(instances))
	for _, inst := range instances {
		attrs := make([]Attribute, 0, len(inst.Attributes))
		for _, a := range inst.Attributes {
			attrs = append(attrs, Attribute{Name: a.Name, Value: a.Value})
		}
		out = append(out, ServiceInstance{
			Id:           inst.ID,
			Name:         inst.Name,
			InstanceUUID: inst.InstanceUUID,
			Language:     string(inst.Language),
			Attributes:   attrs,
		})
	}
	return out
}

func NewGlobalBriefFromModel(b models.GlobalBrief) GlobalBrief {
	return GlobalBrief{
		NumOfService:  b.NumOfService,
		NumOfEndpoint: b.NumOfEndpoint,
		NumOfDatabase: b.NumOfDatabase,
		NumOfCache:    b.NumOfCache,
		NumOfMQ:       b.NumOfMQ,
	}
}
