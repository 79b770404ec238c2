package export

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/apmstack/metadata-query/internal/models"
)

const (
	SheetSummary         = "Summary"
	SheetServices        = "Services"
	SheetBrowserServices = "Browser Services"
	SheetInstances       = "Instances"
	SheetDatabases       = "Databases"

	defaultSheet = "Sheet1"
)

// Source is the read side the workbook is built from. services.MetadataService
// satisfies it.
type Source interface {
	GlobalBrief(ctx context.Context, tr models.TimeRange) (*models.GlobalBrief, error)
	GetAllServices(ctx context.Context, tr models.TimeRange) ([]models.Service, error)
	GetAllBrowserServices(ctx context.Context, tr models.TimeRange) ([]models.Service, error)
	GetServiceInstances(ctx context.Context, tr models.TimeRange, serviceID int) ([]models.ServiceInstance, error)
	GetAllDatabases(ctx context.Context) ([]models.Database, error)
}

type Exporter struct {
	src Source
}

func NewExporter(src Source) *Exporter {
	return &Exporter{src: src}
}

// Write renders the inventory alive in tr as an xlsx workbook.
func (e *Exporter) Write(ctx context.Context, tr models.TimeRange, w io.Writer) error {
	f, err := e.build(ctx, tr)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func (e *Exporter) SaveAs(ctx context.Context, tr models.TimeRange, path string) error {
	f, err := e.build(ctx, tr)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook to %s: %w", path, err)
	}
	zap.S().Named("export").Infow("inventory exported", "path", path)
	return nil
}

func (e *Exporter) build(ctx context.Context, tr models.TimeRange) (*excelize.File, error) {
	brief, err := e.src.GlobalBrief(ctx, tr)
	if err != nil {
		return nil, fmt.Errorf("failed to compute brief: %w", err)
	}
	services, err := e.src.GetAllServices(ctx, tr)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	browsers, err := e.src.GetAllBrowserServices(ctx, tr)
	if err != nil {
		return nil, fmt.Errorf("failed to list browser services: %w", err)
	}
	databases, err := e.src.GetAllDatabases(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list databases: %w", err)
	}

	instanceRows := [][]any{}
	for _, svc := range services {
		instances, err := e.src.GetServiceInstances(ctx, tr, svc.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list instances of service %d: %w", svc.ID, err)
		}
		for _, inst := range instances {
			instanceRows = append(instanceRows, []any{svc.Name, inst.ID, inst.Name, inst.InstanceUUID, string(inst.Language), formatAttributes(inst.Attributes)})
		}
	}

	f := excelize.NewFile()
	sheets := []struct {
		name   string
		header []any
		rows   [][]any
	}{
		{SheetSummary, []any{"Metric", "Value"}, [][]any{
			{"Window start", tr.Start},
			{"Window end", tr.End},
			{"Services", brief.NumOfService},
			{"Endpoints", brief.NumOfEndpoint},
			{"Databases", brief.NumOfDatabase},
			{"Caches", brief.NumOfCache},
			{"MQs", brief.NumOfMQ},
		}},
		{SheetServices, []any{"ID", "Name"}, serviceRows(services)},
		{SheetBrowserServices, []any{"ID", "Name"}, serviceRows(browsers)},
		{SheetInstances, []any{"Service", "ID", "Name", "UUID", "Language", "Attributes"}, instanceRows},
		{SheetDatabases, []any{"ID", "Name", "Type"}, databaseRows(databases)},
	}

	// The default sheet becomes the summary so the workbook opens on it.
	if err := f.SetSheetName(defaultSheet, SheetSummary); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to rename default sheet: %w", err)
	}
	for _, s := range sheets {
		if err := writeSheet(f, s.name, s.header, s.rows); err != nil {
			f.Close()
			return nil, err
		}
	}

	return f, nil
}

func writeSheet(f *excelize.File, name string, header []any, rows [][]any) error {
	// NewSheet returns the existing index for the renamed default sheet.
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", name, err)
	}
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(name, cell, &rows[i]); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", name, i+1, err)
		}
	}
	return nil
}

func serviceRows(services []models.Service) [][]any {
	rows := make([][]any, 0, len(services))
	for _, s := range services {
		rows = append(rows, []any{s.ID, s.Name})
	}
	return rows
}

func databaseRows(databases []models.Database) [][]any {
	rows := make([][]any, 0, len(databases))
	for _, d := range databases {
		rows = append(rows, []any{d.ID, d.Name, d.Type})
	}
	return rows
}

// formatAttributes flattens attributes as "name=value" pairs joined by "; ".
func formatAttributes(attrs []models.Attribute) string {
	parts := make([]string, 0, len(attrs))
	for _, a := range attrs {
		parts = append(parts, a.Name+"="+a.Value)
	}
	return strings.Join(parts, "; ")
}
