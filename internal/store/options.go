package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/apmstack/metadata-query/internal/models"
)

// QueryOption narrows a select statement. Options compose with AND.
type QueryOption func(sq.SelectBuilder) sq.SelectBuilder

// ByTimeRange keeps the rows whose [register_time, heartbeat_time] interval
// overlaps the window:
//
//	(heartbeat_time >= end AND register_time <= end) OR
//	(register_time <= end AND heartbeat_time >= start)
func ByTimeRange(tr models.TimeRange) QueryOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Where(sq.Or{
			sq.And{
				sq.GtOrEq{colHeartbeatTime: tr.End},
				sq.LtOrEq{colRegisterTime: tr.End},
			},
			sq.And{
				sq.LtOrEq{colRegisterTime: tr.End},
				sq.GtOrEq{colHeartbeatTime: tr.Start},
			},
		})
	}
}

// NotAddress drops the synthetic address placeholders.
func NotAddress() QueryOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Where(sq.Eq{colIsAddress: boolFalse})
	}
}

func ByNodeType(nodeType models.NodeType) QueryOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Where(sq.Eq{colNodeType: nodeType.Value()})
	}
}

func ByDetectPoint(detectPoint models.DetectPoint) QueryOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Where(sq.Eq{colDetectPoint: detectPoint.Value()})
	}
}

func ByServiceID(serviceID int) QueryOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Where(sq.Eq{colServiceID: serviceID})
	}
}

func ByName(name string) QueryOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Where(sq.Eq{colName: name})
	}
}

// ByNameContains matches keyword as a literal substring of the name. It is a
// no-op for an empty keyword.
func ByNameContains(keyword string) QueryOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		if keyword == "" {
			return b
		}
		pattern := "%" + likeEscaper.Replace(keyword) + "%"
		return b.Where(sq.Expr(colName+" LIKE ? ESCAPE '"+likeEscape+"'", pattern))
	}
}

var likeEscaper = strings.NewReplacer(
	likeEscape, likeEscape+likeEscape,
	"%", likeEscape+"%",
	"_", likeEscape+"_",
)

func WithLimit(limit uint64) QueryOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Limit(limit)
	}
}

func apply(b sq.SelectBuilder, opts ...QueryOption) sq.SelectBuilder {
	for _, opt := range opts {
		b = opt(b)
	}
	return b
}
