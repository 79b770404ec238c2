package store

import (
	"database/sql"
	"strconv"

	"github.com/apmstack/metadata-query/internal/models"
	"github.com/apmstack/metadata-query/pkg/properties"
)

func scanService(rows *sql.Rows) (models.Service, error) {
	var svc models.Service
	if err := rows.Scan(&svc.ID, &svc.Name); err != nil {
		return models.Service{}, err
	}
	return svc, nil
}

func scanEndpoint(rows *sql.Rows) (models.Endpoint, error) {
	var (
		traffic     models.EndpointTraffic
		detectPoint int
	)
	if err := rows.Scan(&traffic.ServiceID, &traffic.Name, &detectPoint, &traffic.TimeBucket); err != nil {
		return models.Endpoint{}, err
	}
	traffic.DetectPoint = models.DetectPoint(detectPoint)
	return models.Endpoint{ID: traffic.ID(), Name: traffic.Name}, nil
}

func (s *MetadataStore) scanDatabase(rows *sql.Rows) (models.Database, error) {
	var (
		db    models.Database
		props sql.NullString
	)
	if err := rows.Scan(&db.ID, &db.Name, &props); err != nil {
		return models.Database{}, err
	}

	db.Type = models.UnknownDatabaseType
	value, ok, err := properties.Lookup(props.String, properties.KeyDatabase)
	if err != nil {
		s.logger.Warnw("malformed database properties", "id", db.ID, "name", db.Name, "error", err)
		return db, nil
	}
	if ok {
		db.Type = value
	}
	return db, nil
}

func (s *MetadataStore) scanServiceInstance(rows *sql.Rows) (models.ServiceInstance, error) {
	var (
		instance models.ServiceInstance
		sequence int64
		uuid     sql.NullString
		props    sql.NullString
	)
	if err := rows.Scan(&sequence, &instance.Name, &uuid, &props); err != nil {
		return models.ServiceInstance{}, err
	}
	instance.ID = strconv.FormatInt(sequence, 10)
	instance.InstanceUUID = uuid.String
	instance.Language = models.LanguageUnknown

	if err := decodeInstanceProperties(&instance, props.String); err != nil {
		s.logger.Warnw("malformed service instance properties", "id", instance.ID, "name", instance.Name, "error", err)
		instance.Language = models.LanguageUnknown
		instance.Attributes = nil
	}
	return instance, nil
}

// attributeHandler routes one decoded property into a service instance.
type attributeHandler func(instance *models.ServiceInstance, key, value string) error

// instanceAttributeHandlers is the closed set of well-known keys. Any other
// key goes through appendAttribute verbatim.
var instanceAttributeHandlers = map[string]attributeHandler{
	properties.KeyLanguage:  setLanguage,
	properties.KeyOSName:    appendAttribute,
	properties.KeyHostName:  appendAttribute,
	properties.KeyProcessNo: appendAttribute,
	properties.KeyIPv4s:     expandAttributeList,
}

func decodeInstanceProperties(instance *models.ServiceInstance, blob string) error {
	pairs, err := properties.Decode(blob)
	if err != nil {
		return err
	}
	for _, p := range pairs {
		handler, ok := instanceAttributeHandlers[p.Key]
		if !ok {
			handler = appendAttribute
		}
		if err := handler(instance, p.Key, p.Value); err != nil {
			return err
		}
	}
	return nil
}

func setLanguage(instance *models.ServiceInstance, _ string, value string) error {
	instance.Language = models.ParseLanguage(value)
	return nil
}

func appendAttribute(instance *models.ServiceInstance, key, value string) error {
	instance.Attributes = append(instance.Attributes, models.Attribute{Name: key, Value: value})
	return nil
}

// expandAttributeList appends one attribute per element, all sharing key.
func expandAttributeList(instance *models.ServiceInstance, key, value string) error {
	list, err := properties.DecodeStringList(value)
	if err != nil {
		return err
	}
	for _, item := range list {
		instance.Attributes = append(instance.Attributes, models.Attribute{Name: key, Value: item})
	}
	return nil
}
