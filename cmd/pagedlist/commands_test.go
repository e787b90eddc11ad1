package main

import (
	"bytes"
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nrfta/pagedlist/internal/models"
	"github.com/nrfta/pagedlist/source"
)

var _ = Describe("Commands", func() {
	var stdout, stderr *bytes.Buffer

	execute := func(args ...string) error {
		cmd := newRootCommand()
		cmd.SetOut(stdout)
		cmd.SetErr(stderr)
		cmd.SetArgs(args)
		return cmd.ExecuteContext(context.Background())
	}

	BeforeEach(func() {
		stdout = &bytes.Buffer{}
		stderr = &bytes.Buffer{}
	})

	Describe("run", func() {
		It("scrolls a memory list to its end", func() {
			err := execute("run", "--total", "5", "--page-size", "2", "--viewport", "3")
			Expect(err).ToNot(HaveOccurred())

			out := stdout.String()
			Expect(out).To(ContainSubstring("-- frame 1: slots 0-2 --"))
			Expect(out).To(ContainSubstring("loading..."))
			Expect(out).To(ContainSubstring("Item 1"))
			Expect(out).To(ContainSubstring("Item 5"))
			Expect(out).ToNot(ContainSubstring("Item 6"))
			Expect(stderr.String()).To(ContainSubstring("Reached end of list"))
		})

		It("renders the empty view for an empty list", func() {
			err := execute("run", "--total", "0")
			Expect(err).ToNot(HaveOccurred())

			Expect(stdout.String()).To(ContainSubstring("(no items)"))
		})

		It("recovers from a failed page by resetting", func() {
			err := execute("run", "--total", "6", "--page-size", "2", "--viewport", "2",
				"--fail-page", "2", "--retries", "1")
			Expect(err).ToNot(HaveOccurred())

			Expect(stdout.String()).To(ContainSubstring("failed to load"))
			Expect(stdout.String()).To(ContainSubstring("Item 6"))
			Expect(stderr.String()).To(ContainSubstring("Resetting list after failed page"))
		})

		It("gives up when no retries remain", func() {
			err := execute("run", "--total", "6", "--page-size", "2", "--viewport", "2",
				"--fail-page", "2", "--retries", "0")
			Expect(err).To(MatchError(errPageFailed))
			Expect(err).To(MatchError(ContainSubstring("page unavailable")))
		})

		It("rejects an invalid configuration", func() {
			err := execute("run", "--viewport", "0")
			Expect(err).To(MatchError(ContainSubstring("viewport must be positive")))
		})
	})

	Describe("seed", func() {
		It("requires a dsn", func() {
			err := execute("seed")
			Expect(err).To(MatchError("seed requires --dsn"))
		})
	})

	Describe("formatItem", func() {
		It("includes the subtitle when present", func() {
			item := &models.Item{Position: 3, Title: "Item 3"}
			Expect(formatItem(item)).To(Equal("#3 Item 3"))

			item.Subtitle.SetValid("details")
			Expect(formatItem(item)).To(Equal("#3 Item 3 (details)"))
		})
	})

	Describe("memoryFetcher", func() {
		It("fails the configured page once", func() {
			fetcher := memoryFetcher(&Config{Total: 10, PageSize: 5, FailPage: 2})

			count, err := fetcher.Count(context.Background(), source.FetchParams{Offset: 0, Limit: 5})
			Expect(err).ToNot(HaveOccurred())
			Expect(count).To(Equal(int64(10)))

			_, err = fetcher.Fetch(context.Background(), source.FetchParams{Offset: 5, Limit: 5})
			Expect(err).To(HaveOccurred())

			items, err := fetcher.Fetch(context.Background(), source.FetchParams{Offset: 5, Limit: 5})
			Expect(err).ToNot(HaveOccurred())
			Expect(items).To(Equal([]string{"Item 6", "Item 7", "Item 8", "Item 9", "Item 10"}))
		})
	})
})
