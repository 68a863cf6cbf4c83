package export_test

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kpauljoseph/vocabankify/internal/export"
)

var _ = Describe("CSV Exporter", func() {
	It("should quote every field and end each row with a newline", func() {
		var buf bytes.Buffer
		err := export.WriteCSV(&buf, [][]string{
			{"語", "漢字", "Translation"},
			{"猫", "", "cat"},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(buf.String()).To(Equal("\"語\",\"漢字\",\"Translation\"\n\"猫\",\"\",\"cat\"\n"))
	})

	It("should double embedded quotes", func() {
		var buf bytes.Buffer
		Expect(export.WriteCSV(&buf, [][]string{{`say "hi"`}})).To(Succeed())
		Expect(buf.String()).To(Equal(`"say ""hi"""` + "\n"))
	})

	It("should keep rows with different widths", func() {
		var buf bytes.Buffer
		Expect(export.WriteCSV(&buf, [][]string{{"a"}, {"b", "c", "d"}, {}})).To(Succeed())
		Expect(buf.String()).To(Equal("\"a\"\n\"b\",\"c\",\"d\"\n\n"))
	})

	It("should round-trip through a standard CSV reader", func() {
		rows := [][]string{
			{"header", "with \"quotes\"", "and, commas"},
			{"犬", `"`, `""`},
			{"multi\nline", "", " padded "},
		}

		var buf bytes.Buffer
		Expect(export.WriteCSV(&buf, rows)).To(Succeed())

		reader := csv.NewReader(strings.NewReader(buf.String()))
		parsed, err := reader.ReadAll()
		Expect(err).NotTo(HaveOccurred())
		Expect(parsed).To(Equal(rows))
	})

	Context("when saving to disk", func() {
		var testDir string

		BeforeEach(func() {
			var err error
			testDir, err = os.MkdirTemp("", "export-test-*")
			Expect(err).NotTo(HaveOccurred())
		})

		AfterEach(func() {
			os.RemoveAll(testDir)
		})

		It("should write a UTF-8 file", func() {
			path := filepath.Join(testDir, "output.csv")
			Expect(export.SaveCSV(path, [][]string{{"犬", "dog"}})).To(Succeed())

			data, err := os.ReadFile(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(Equal("\"犬\",\"dog\"\n"))
		})

		It("should fail when the directory does not exist", func() {
			err := export.SaveCSV(filepath.Join(testDir, "missing", "out.csv"), nil)
			Expect(err).To(HaveOccurred())
		})
	})

	It("should derive the output path from the document", func() {
		Expect(export.DefaultOutputPath("/docs/lesson 1.docx")).To(Equal("/docs/lesson 1.csv"))
		Expect(export.DefaultOutputPath("vocab.docx")).To(Equal("vocab.csv"))
	})
})
