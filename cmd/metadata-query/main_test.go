package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/apmstack/metadata-query/internal/models"
)

var _ = Describe("CLI", func() {
	execute := func(args ...string) (string, error) {
		var out bytes.Buffer
		root := newRootCmd()
		root.SetOut(&out)
		root.SetErr(&out)
		root.SetArgs(append(args, "--log-level", "error"))
		err := root.ExecuteContext(context.Background())
		return out.String(), err
	}

	It("migrates an empty database", func() {
		_, err := execute("migrate")
		Expect(err).NotTo(HaveOccurred())
	})

	It("prints an empty service list", func() {
		out, err := execute("query", "services", "--start", "1000", "--end", "2000")

		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("no results"))
	})

	It("prints counts as a table", func() {
		out, err := execute("query", "count", "Database")

		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("TOTAL"))
		Expect(out).To(ContainSubstring("0"))
	})

	It("prints the global brief", func() {
		out, err := execute("query", "brief", "--start", "1000", "--end", "2000")

		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("SERVICES"))
	})

	It("fails on an unknown node type", func() {
		_, err := execute("query", "count", "Toaster")
		Expect(err).To(HaveOccurred())
	})

	It("fails on an inverted window", func() {
		_, err := execute("query", "services", "--start", "3000", "--end", "2000")
		Expect(err).To(MatchError(ContainSubstring("invalid")))
	})

	It("reports a missing service", func() {
		_, err := execute("query", "service", "ghost")
		Expect(err).To(MatchError(ContainSubstring("not found")))
	})

	It("rejects an unsupported storage driver", func() {
		_, err := execute("query", "databases", "--storage.driver", "oracle")
		Expect(err).To(MatchError(ContainSubstring("storage.driver")))
	})

	It("exports a workbook", func() {
		path := filepath.Join(GinkgoT().TempDir(), "inventory.xlsx")

		_, err := execute("export", "--output", path)

		Expect(err).NotTo(HaveOccurred())
		info, err := os.Stat(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(info.Size()).To(BeNumerically(">", 0))
	})

	It("reads configuration from the environment", func() {
		os.Setenv("METADATA_QUERY_QUERY_MAX_SIZE", "0")
		DeferCleanup(os.Unsetenv, "METADATA_QUERY_QUERY_MAX_SIZE")

		_, err := execute("query", "databases")

		Expect(err).To(MatchError(ContainSubstring("query.max-size")))
	})
})

var _ = Describe("windowFlags", func() {
	now := time.UnixMilli(10_000_000)

	It("defaults to the last duration ending now", func() {
		w := windowFlags{last: time.Hour}
		Expect(w.timeRange(now)).To(Equal(models.NewTimeRange(10_000_000-3_600_000, 10_000_000)))
	})

	It("keeps explicit bounds", func() {
		w := windowFlags{start: 5, end: 9, last: time.Hour}
		Expect(w.timeRange(now)).To(Equal(models.NewTimeRange(5, 9)))
	})
})
