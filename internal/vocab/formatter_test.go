package vocab_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kpauljoseph/vocabankify/internal/vocab"
	"github.com/kpauljoseph/vocabankify/pkg/models"
)

var _ = Describe("Formatter", func() {
	DescribeTable("annotation wrapping",
		func(annotation, expected string) {
			card := vocab.Format("語", annotation, "word")
			Expect(card.Annotation).To(Equal(expected))
		},
		Entry("non-empty annotation", "漢字", "(漢字)"),
		Entry("annotation with surrounding spaces", "  戦 ", "(戦)"),
		Entry("empty annotation", "", ""),
		Entry("whitespace-only annotation", " \t\n ", ""),
	)

	It("should trim vocabulary and translation", func() {
		card := vocab.Format("  猫\n", "", "\tcat  ")
		Expect(card).To(Equal(models.Flashcard{
			Vocabulary:  "猫",
			Annotation:  "",
			Translation: "cat",
		}))
	})

	It("should be stable under re-trimming", func() {
		inputs := [][3]string{
			{" a ", " b ", " c "},
			{"犬", "", "dog"},
			{"　全角　", "x", " y"},
		}
		for _, in := range inputs {
			card := vocab.Format(in[0], in[1], in[2])
			Expect(card.Vocabulary).To(Equal(strings.TrimSpace(card.Vocabulary)))
			Expect(card.Translation).To(Equal(strings.TrimSpace(card.Translation)))

			again := vocab.Format(card.Vocabulary, "", card.Translation)
			Expect(again.Vocabulary).To(Equal(card.Vocabulary))
			Expect(again.Translation).To(Equal(card.Translation))
		}
	})
})
