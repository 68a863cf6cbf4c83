package vocab_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kpauljoseph/vocabankify/internal/docx"
	"github.com/kpauljoseph/vocabankify/internal/docx/docxtest"
	"github.com/kpauljoseph/vocabankify/internal/vocab"
	"github.com/kpauljoseph/vocabankify/pkg/models"
)

var exampleRows = [][]string{
	{"語", "漢字", "Translation"},
	{"猫", "", "cat"},
	{"犬", "戦", "dog"},
}

var _ = Describe("Extractor", func() {
	Context("on the flashcard path", func() {
		It("should skip the header and format every data row", func() {
			cards, err := vocab.ExtractFlashcards(docx.Table{Rows: exampleRows})
			Expect(err).NotTo(HaveOccurred())
			Expect(cards).To(Equal([]models.Flashcard{
				{Vocabulary: "猫", Annotation: "", Translation: "cat"},
				{Vocabulary: "犬", Annotation: "(戦)", Translation: "dog"},
			}))
		})

		It("should return row_count - 1 records", func() {
			for n := 1; n <= 6; n++ {
				rows := make([][]string, n)
				for i := range rows {
					rows[i] = []string{"v", "a", "t"}
				}
				cards, err := vocab.ExtractFlashcards(docx.Table{Rows: rows})
				Expect(err).NotTo(HaveOccurred())
				Expect(cards).To(HaveLen(n - 1))
			}
		})

		It("should return nothing for an empty table", func() {
			cards, err := vocab.ExtractFlashcards(docx.Table{})
			Expect(err).NotTo(HaveOccurred())
			Expect(cards).To(BeEmpty())
		})

		It("should fail fast on a row with the wrong cell count", func() {
			rows := [][]string{
				{"h1", "h2", "h3"},
				{"ok", "", "fine"},
				{"short", "row"},
				{"never", "", "read"},
			}
			_, err := vocab.ExtractFlashcards(docx.Table{Rows: rows})

			var rowErr *vocab.RowError
			Expect(err).To(BeAssignableToTypeOf(rowErr))
			rowErr = err.(*vocab.RowError)
			Expect(rowErr.Row).To(Equal(3))
			Expect(rowErr.Cells).To(Equal(2))
			Expect(err.Error()).To(ContainSubstring("row 3 has 2 cells, expected 3"))
		})

		It("should not validate the header row", func() {
			rows := [][]string{
				{"a single header"},
				{"x", "y", "z"},
			}
			cards, err := vocab.ExtractFlashcards(docx.Table{Rows: rows})
			Expect(err).NotTo(HaveOccurred())
			Expect(cards).To(HaveLen(1))
		})
	})

	Context("on the CSV path", func() {
		It("should return every row including the header", func() {
			rows := [][]string{
				{"a", "b"},
				{"c", "d", "e"},
				{"f"},
			}
			Expect(vocab.ExtractRows(docx.Table{Rows: rows})).To(Equal(rows))
		})

		It("should not share memory with the table", func() {
			table := docx.Table{Rows: [][]string{{"a"}}}
			rows := vocab.ExtractRows(table)
			rows[0][0] = "changed"
			Expect(table.Rows[0][0]).To(Equal("a"))
		})
	})

	Context("when loading from a document", func() {
		var testDir string

		BeforeEach(func() {
			var err error
			testDir, err = os.MkdirTemp("", "vocab-test-*")
			Expect(err).NotTo(HaveOccurred())
		})

		AfterEach(func() {
			os.RemoveAll(testDir)
		})

		It("should read flashcards and rows from the first table", func() {
			path := filepath.Join(testDir, "vocab.docx")
			Expect(docxtest.Write(path, exampleRows)).To(Succeed())

			cards, err := vocab.LoadFlashcards(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(cards).To(HaveLen(2))
			Expect(cards[1].Front()).To(Equal("犬 (戦)"))

			rows, err := vocab.LoadRows(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(Equal(exampleRows))
		})

		It("should report a document without a table", func() {
			path := filepath.Join(testDir, "empty.docx")
			Expect(docxtest.WriteRaw(path, docxtest.Paragraph("nothing here"))).To(Succeed())

			_, err := vocab.LoadFlashcards(path)
			Expect(err).To(MatchError(docx.ErrNoTable))

			_, err = vocab.LoadRows(path)
			Expect(err).To(MatchError(docx.ErrNoTable))
		})
	})
})
