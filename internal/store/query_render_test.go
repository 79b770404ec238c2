package store

import (
	"math"

	sq "github.com/Masterminds/squirrel"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/apmstack/metadata-query/internal/models"
)

var _ = Describe("query rendering", func() {
	var (
		s  *MetadataStore
		tr models.TimeRange
	)

	BeforeEach(func() {
		s = NewMetadataStore(nil, MetadataStoreConfig{MaxSize: 50})
		tr = models.NewTimeRange(100, 200)
	})

	It("should render the overlap predicate with end, end, end, start", func() {
		query, args, err := s.numOfServicesQuery(tr).ToSql()
		Expect(err).NotTo(HaveOccurred())
		Expect(query).To(Equal("SELECT COUNT(*) AS num FROM service_inventory WHERE " +
			"((heartbeat_time >= ? AND register_time <= ?) OR (register_time <= ? AND heartbeat_time >= ?)) " +
			"AND is_address = ? AND node_type = ?"))
		Expect(args).To(Equal([]any{int64(200), int64(200), int64(200), int64(100), boolFalse, models.NodeTypeNormal.Value()}))
	})

	It("should bind the detect point of the endpoint count", func() {
		query, args, err := s.numOfEndpointsQuery().ToSql()
		Expect(err).NotTo(HaveOccurred())
		Expect(query).To(Equal("SELECT COUNT(*) AS num FROM endpoint_traffic WHERE detect_point = ?"))
		Expect(args).To(Equal([]any{models.DetectPointServer.Value()}))
	})

	It("should bind the node type of the conjectural count", func() {
		query, args, err := s.numOfConjecturalQuery(models.NodeTypeMQ).ToSql()
		Expect(err).NotTo(HaveOccurred())
		Expect(query).To(Equal("SELECT COUNT(*) AS num FROM service_inventory WHERE node_type = ?"))
		Expect(args).To(Equal([]any{4}))
	})

	It("should cap list queries at the configured maximum", func() {
		query, _, err := s.servicesQuery(tr, models.NodeTypeBrowser, "").ToSql()
		Expect(err).NotTo(HaveOccurred())
		Expect(query).To(HaveSuffix("LIMIT 50"))
		Expect(query).NotTo(ContainSubstring("LIKE"))

		query, _, err = s.databasesQuery().ToSql()
		Expect(err).NotTo(HaveOccurred())
		Expect(query).To(HaveSuffix("LIMIT 50"))
	})

	It("should bind the keyword as a LIKE parameter", func() {
		query, args, err := s.servicesQuery(tr, models.NodeTypeNormal, "pay").ToSql()
		Expect(err).NotTo(HaveOccurred())
		Expect(query).To(ContainSubstring("name LIKE ?"))
		Expect(args).To(ContainElement("%pay%"))
	})

	It("should escape LIKE wildcards in the keyword", func() {
		query, args, err := s.servicesQuery(tr, models.NodeTypeNormal, `50%_off\x`).ToSql()
		Expect(err).NotTo(HaveOccurred())
		Expect(query).To(ContainSubstring(`name LIKE ? ESCAPE '\'`))
		Expect(args).To(ContainElement(`%50\%\_off\\x%`))
	})

	// Given a requested limit of 10
	// When the endpoint search is rendered
	// Then the storage cap is 70
	It("should over-fetch endpoints by seven", func() {
		query, args, err := s.searchEndpointQuery("", 3, 10).ToSql()
		Expect(err).NotTo(HaveOccurred())
		Expect(query).To(Equal("SELECT service_id, name, detect_point, time_bucket FROM endpoint_traffic " +
			"WHERE service_id = ? AND detect_point = ? LIMIT 70"))
		Expect(args).To(Equal([]any{3, models.DetectPointServer.Value()}))
	})

	It("should cap the endpoint over-fetch instead of overflowing", func() {
		query, _, err := s.searchEndpointQuery("", 3, math.MaxInt).ToSql()
		Expect(err).NotTo(HaveOccurred())
		Expect(query).To(HaveSuffix("LIMIT 9223372036854775807"))
	})

	It("should look a service up by exact name with a single row cap", func() {
		query, args, err := s.searchServiceQuery("svc").ToSql()
		Expect(err).NotTo(HaveOccurred())
		Expect(query).To(Equal("SELECT sequence, name FROM service_inventory WHERE is_address = ? AND name = ? LIMIT 1"))
		Expect(args).To(Equal([]any{boolFalse, "svc"}))
	})

	It("should not cap service instances", func() {
		query, args, err := s.serviceInstancesQuery(tr, 9).ToSql()
		Expect(err).NotTo(HaveOccurred())
		Expect(query).NotTo(ContainSubstring("LIMIT"))
		Expect(args).To(HaveLen(5))
		Expect(args[4]).To(Equal(9))
	})

	It("should use dollar placeholders for postgres", func() {
		pg := NewMetadataStore(nil, MetadataStoreConfig{MaxSize: 5, Placeholder: sq.Dollar})
		query, _, err := pg.numOfServicesQuery(tr).ToSql()
		Expect(err).NotTo(HaveOccurred())
		Expect(query).To(ContainSubstring("$6"))
		Expect(query).NotTo(ContainSubstring("?"))
	})
})
