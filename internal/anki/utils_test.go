package anki_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kpauljoseph/vocabankify/internal/anki"
)

var _ = Describe("Deck names and reports", func() {
	DescribeTable("GetDeckNameFromPath",
		func(root, relativePath, expected string) {
			Expect(anki.GetDeckNameFromPath(root, relativePath)).To(Equal(expected))
		},
		Entry("file only", "", "vocab.docx", "vocab"),
		Entry("root prefix", "Japanese", "vocab.docx", "Japanese::vocab"),
		Entry("nested directories", "Japanese", "n5/week 1/lesson.docx", "Japanese::n5::week 1::lesson"),
		Entry("blank root", "  ", "a/b.docx", "a::b"),
	)

	It("should summarise a clean run", func() {
		report := anki.NewProcessingReport()
		report.TotalFlashcards = 2
		report.AddedCount = 2
		Expect(report.Summary()).To(Equal("All 2 flashcards have been successfully added to Anki!"))
	})

	It("should summarise skipped and failed cards", func() {
		report := &anki.ProcessingReport{
			TotalFlashcards: 4,
			AddedCount:      1,
			SkippedCount:    2,
			FailedCount:     1,
		}
		Expect(report.Summary()).To(Equal("Added 1 of 4 flashcards to Anki (2 duplicates skipped, 1 failed)."))
	})

	It("should measure the time taken once finished", func() {
		start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
		report := &anki.ProcessingReport{StartTime: start, EndTime: start.Add(1500 * time.Millisecond)}
		Expect(report.TimeTaken()).To(Equal(1500 * time.Millisecond))

		report.Print(ankiTestLogger())
	})
})
