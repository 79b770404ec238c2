package export_test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/xuri/excelize/v2"

	"github.com/apmstack/metadata-query/internal/export"
	"github.com/apmstack/metadata-query/internal/models"
)

type fakeSource struct {
	brief     models.GlobalBrief
	services  []models.Service
	browsers  []models.Service
	instances map[int][]models.ServiceInstance
	databases []models.Database
	err       error
}

func (f *fakeSource) GlobalBrief(context.Context, models.TimeRange) (*models.GlobalBrief, error) {
	if f.err != nil {
		return nil, f.err
	}
	b := f.brief
	return &b, nil
}

func (f *fakeSource) GetAllServices(context.Context, models.TimeRange) ([]models.Service, error) {
	return f.services, nil
}

func (f *fakeSource) GetAllBrowserServices(context.Context, models.TimeRange) ([]models.Service, error) {
	return f.browsers, nil
}

func (f *fakeSource) GetServiceInstances(_ context.Context, _ models.TimeRange, serviceID int) ([]models.ServiceInstance, error) {
	return f.instances[serviceID], nil
}

func (f *fakeSource) GetAllDatabases(context.Context) ([]models.Database, error) {
	return f.databases, nil
}

var _ = Describe("Exporter", func() {
	var (
		src *fakeSource
		tr  models.TimeRange
	)

	BeforeEach(func() {
		tr = models.NewTimeRange(1000, 2000)
		src = &fakeSource{
			brief:    models.GlobalBrief{NumOfService: 2, NumOfEndpoint: 7, NumOfDatabase: 1},
			services: []models.Service{{ID: 1, Name: "checkout"}, {ID: 2, Name: "cart"}},
			browsers: []models.Service{{ID: 9, Name: "web-ui"}},
			instances: map[int][]models.ServiceInstance{
				1: {{
					ID: "10", Name: "checkout-1", InstanceUUID: "u-1", Language: models.LanguageGo,
					Attributes: []models.Attribute{{Name: "hostname", Value: "h1"}, {Name: "ipv4s", Value: "10.0.0.1"}},
				}},
			},
			databases: []models.Database{{ID: 3, Name: "pg:5432", Type: "PostgreSQL"}},
		}
	})

	open := func(buf *bytes.Buffer) *excelize.File {
		f, err := excelize.OpenReader(buf)
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(f.Close)
		return f
	}

	// Given an inventory source with services, instances and databases
	// When the exporter writes a workbook
	// Then one sheet per inventory kind is produced with a header row
	It("should write one sheet per inventory kind", func() {
		// Arrange
		var buf bytes.Buffer

		// Act
		err := export.NewExporter(src).Write(context.Background(), tr, &buf)

		// Assert
		Expect(err).NotTo(HaveOccurred())
		f := open(&buf)
		Expect(f.GetSheetList()).To(Equal([]string{
			export.SheetSummary, export.SheetServices, export.SheetBrowserServices, export.SheetInstances, export.SheetDatabases,
		}))

		services, err := f.GetRows(export.SheetServices)
		Expect(err).NotTo(HaveOccurred())
		Expect(services).To(Equal([][]string{{"ID", "Name"}, {"1", "checkout"}, {"2", "cart"}}))

		instances, err := f.GetRows(export.SheetInstances)
		Expect(err).NotTo(HaveOccurred())
		Expect(instances).To(HaveLen(2))
		Expect(instances[1]).To(Equal([]string{"checkout", "10", "checkout-1", "u-1", "GO", "hostname=h1; ipv4s=10.0.0.1"}))

		databases, err := f.GetRows(export.SheetDatabases)
		Expect(err).NotTo(HaveOccurred())
		Expect(databases[1]).To(Equal([]string{"3", "pg:5432", "PostgreSQL"}))
	})

	It("should put the brief counters on the summary sheet", func() {
		var buf bytes.Buffer
		Expect(export.NewExporter(src).Write(context.Background(), tr, &buf)).To(Succeed())

		rows, err := open(&buf).GetRows(export.SheetSummary)
		Expect(err).NotTo(HaveOccurred())
		Expect(rows).To(ContainElement([]string{"Endpoints", "7"}))
		Expect(rows).To(ContainElement([]string{"Window start", "1000"}))
	})

	It("should save the workbook to a file", func() {
		path := filepath.Join(GinkgoT().TempDir(), "inventory.xlsx")

		Expect(export.NewExporter(src).SaveAs(context.Background(), tr, path)).To(Succeed())

		f, err := excelize.OpenFile(path)
		Expect(err).NotTo(HaveOccurred())
		defer f.Close()
		Expect(f.GetSheetList()).To(ContainElement(export.SheetDatabases))
	})

	It("should propagate source failures", func() {
		src.err = errors.New("storage down")

		var buf bytes.Buffer
		err := export.NewExporter(src).Write(context.Background(), tr, &buf)

		Expect(err).To(MatchError(ContainSubstring("storage down")))
		Expect(buf.Len()).To(BeZero())
	})
})
