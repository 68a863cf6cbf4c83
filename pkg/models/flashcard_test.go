package models_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kpauljoseph/vocabankify/pkg/models"
)

var _ = Describe("Flashcard Models", func() {
	Context("Flashcard", func() {
		It("should join vocabulary and annotation on the front", func() {
			card := models.Flashcard{
				Vocabulary:  "犬",
				Annotation:  "(戦)",
				Translation: "dog",
			}

			Expect(card.Front()).To(Equal("犬 (戦)"))
			Expect(card.Back()).To(Equal("dog"))
		})

		It("should keep the trailing space when there is no annotation", func() {
			card := models.Flashcard{
				Vocabulary:  "猫",
				Translation: "cat",
			}

			Expect(card.Front()).To(Equal("猫 "))
			Expect(card.Back()).To(Equal("cat"))
		})
	})
})
