package services_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/apmstack/metadata-query/internal/models"
	"github.com/apmstack/metadata-query/internal/services"
	srvErrors "github.com/apmstack/metadata-query/pkg/errors"
	"github.com/apmstack/metadata-query/pkg/scheduler"
)

var _ = Describe("MetadataService", func() {
	var (
		ctx    context.Context
		reader *fakeReader
		sched  *scheduler.Scheduler
		srv    *services.MetadataService
		tr     models.TimeRange
	)

	BeforeEach(func() {
		ctx = context.Background()
		reader = &fakeReader{byNodeType: map[models.NodeType]int{}}
		sched = scheduler.NewScheduler(2)
		srv = services.NewMetadataService(reader, sched)
		tr = models.NewTimeRange(1000, 2000)
	})

	AfterEach(func() {
		sched.Close()
	})

	Context("time window validation", func() {
		// Given a window whose start is after its end
		// When we list services
		// Then a validation error is returned without touching the store
		It("should reject an inverted window", func() {
			_, err := srv.GetAllServices(ctx, models.NewTimeRange(2000, 1000))
			Expect(srvErrors.IsValidationError(err)).To(BeTrue())
			Expect(reader.calls).To(BeZero())
		})

		It("should reject negative bounds", func() {
			_, err := srv.NumOfServices(ctx, models.NewTimeRange(-1, 10))
			Expect(srvErrors.IsValidationError(err)).To(BeTrue())
		})

		It("should accept an instant window", func() {
			_, err := srv.GetServiceInstances(ctx, models.NewTimeRange(5, 5), 1)
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Context("GetService", func() {
		It("should return the service found by the store", func() {
			reader.service = &models.Service{ID: 3, Name: "checkout"}

			svc, err := srv.GetService(ctx, "checkout")
			Expect(err).NotTo(HaveOccurred())
			Expect(svc.ID).To(Equal(3))
		})

		It("should map an empty answer to not found", func() {
			_, err := srv.GetService(ctx, "missing")
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})

		It("should pass storage errors through", func() {
			reader.err = srvErrors.NewStorageError("search_service", errors.New("conn reset"))

			_, err := srv.GetService(ctx, "x")
			Expect(srvErrors.IsStorageError(err)).To(BeTrue())
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeFalse())
		})
	})

	Context("SearchEndpoints", func() {
		endpoint := func(name string) models.Endpoint {
			return models.Endpoint{ID: models.BuildEndpointID(1, name, models.DetectPointServer), Name: name}
		}

		// Given traffic rows repeating the same logical endpoints
		// When we search endpoints
		// Then duplicates are dropped in first-seen order
		It("should deduplicate by endpoint id", func() {
			reader.endpoints = []models.Endpoint{
				endpoint("/a"), endpoint("/b"), endpoint("/a"), endpoint("/c"), endpoint("/b"),
			}

			endpoints, err := srv.SearchEndpoints(ctx, "", 1, 10)
			Expect(err).NotTo(HaveOccurred())
			Expect(endpoints).To(Equal([]models.Endpoint{endpoint("/a"), endpoint("/b"), endpoint("/c")}))
			Expect(reader.lastLimit).To(Equal(10))
		})

		It("should truncate to the requested limit", func() {
			reader.endpoints = []models.Endpoint{
				endpoint("/a"), endpoint("/a"), endpoint("/b"), endpoint("/c"), endpoint("/d"),
			}

			endpoints, err := srv.SearchEndpoints(ctx, "", 1, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(endpoints).To(Equal([]models.Endpoint{endpoint("/a"), endpoint("/b")}))
		})

		It("should reject a non positive limit", func() {
			_, err := srv.SearchEndpoints(ctx, "", 1, 0)
			Expect(srvErrors.IsValidationError(err)).To(BeTrue())
		})
	})

	Context("GlobalBrief", func() {
		It("should collect the five counts", func() {
			reader.numServices = 4
			reader.numEndpoint = 12
			reader.byNodeType[models.NodeTypeDatabase] = 2
			reader.byNodeType[models.NodeTypeCache] = 1
			reader.byNodeType[models.NodeTypeMQ] = 3

			brief, err := srv.GlobalBrief(ctx, tr)
			Expect(err).NotTo(HaveOccurred())
			Expect(*brief).To(Equal(models.GlobalBrief{
				NumOfService:  4,
				NumOfEndpoint: 12,
				NumOfDatabase: 2,
				NumOfCache:    1,
				NumOfMQ:       3,
			}))
		})

		It("should fail the whole brief when one count fails", func() {
			reader.err = srvErrors.NewStorageError("num_of_services", errors.New("boom"))

			brief, err := srv.GlobalBrief(ctx, tr)
			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsStorageError(err)).To(BeTrue())
			Expect(brief).To(BeNil())
		})

		It("should stop waiting when the context is cancelled", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()

			_, err := srv.GlobalBrief(cctx, tr)
			Expect(err).To(HaveOccurred())
		})
	})
})
