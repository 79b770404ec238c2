package errors_test

import (
	"errors"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	srvErrors "github.com/apmstack/metadata-query/pkg/errors"
)

var _ = Describe("Errors", func() {
	It("keeps the driver error reachable through a storage error", func() {
		cause := errors.New("connection reset")
		err := fmt.Errorf("listing: %w", srvErrors.NewStorageError("GetAllServices", cause))

		Expect(srvErrors.IsStorageError(err)).To(BeTrue())
		Expect(errors.Is(err, cause)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring("GetAllServices"))
	})

	It("tells error kinds apart", func() {
		notFound := srvErrors.NewServiceNotFoundError("checkout")
		invalid := srvErrors.NewValidationError("limit", "must be positive")

		Expect(srvErrors.IsResourceNotFoundError(notFound)).To(BeTrue())
		Expect(srvErrors.IsStorageError(notFound)).To(BeFalse())
		Expect(srvErrors.IsValidationError(invalid)).To(BeTrue())
		Expect(srvErrors.IsResourceNotFoundError(invalid)).To(BeFalse())
		Expect(notFound.Error()).To(Equal(`service "checkout" not found`))
		Expect(invalid.Error()).To(Equal("invalid limit: must be positive"))
	})
})
