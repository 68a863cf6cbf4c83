package ui

import (
	"bytes"
	"os"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kpauljoseph/vocabankify/pkg/logger"
	"github.com/kpauljoseph/vocabankify/pkg/models"
)

var _ = Describe("Session", func() {
	It("should run a confirmation dialog to completion", func() {
		var out bytes.Buffer
		s := NewSession(strings.NewReader("y"), &out)
		ok, err := s.Confirm("Instructions", "Proceed?")
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeTrue())
	})

	It("should report a declined confirmation", func() {
		var out bytes.Buffer
		s := NewSession(strings.NewReader("n"), &out)
		ok, err := s.Confirm("Instructions", "Proceed?")
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeFalse())
	})

	It("should drive a progress bar from the caller", func() {
		var out bytes.Buffer
		s := NewSession(strings.NewReader(""), &out)
		bar, err := s.StartProgress("Adding Flashcards...", 2)
		Expect(err).NotTo(HaveOccurred())

		bar.Advance(models.Flashcard{Vocabulary: "猫"}, nil)
		bar.Advance(models.Flashcard{Vocabulary: "犬"}, nil)
		bar.Done()
		bar.Done()
	})
})

var _ = Describe("Session file dialog", func() {
	It("should open in the working directory by default", func() {
		wd, err := os.Getwd()
		Expect(err).NotTo(HaveOccurred())
		Expect(NewSession(nil, nil).startDir).To(Equal(wd))
	})

	It("should open in the configured start directory", func() {
		dir := GinkgoT().TempDir()
		s := NewSession(strings.NewReader(""), &bytes.Buffer{}, WithStartDir(dir))
		Expect(s.startDir).To(Equal(dir))

		m := newFilePickerModel("Select", []string{".docx"}, s.startDir)
		Expect(m.picker.CurrentDirectory).To(Equal(dir))
		Expect(m.View()).To(ContainSubstring(dir))
	})
})

var _ = Describe("Headless", func() {
	var log *logger.Logger

	BeforeEach(func() {
		log = logger.New(logger.WithOutput(GinkgoWriter), logger.WithFlags(0))
		log.SetVerbose(true)
	})

	It("should only confirm when told to", func() {
		ok, err := NewHeadless(log, false).Confirm("Instructions", "")
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeFalse())

		ok, err = NewHeadless(log, true).Confirm("Instructions", "")
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeTrue())
	})

	It("should never pick a file and fall back to the suggested deck", func() {
		h := NewHeadless(log, true)
		path, err := h.PickFile("Select", nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(path).To(BeEmpty())

		deck, err := h.AskString("Deck", "", "Japanese::vocab", []string{"Default"})
		Expect(err).NotTo(HaveOccurred())
		Expect(deck).To(Equal("Japanese::vocab"))
	})

	It("should log progress", func() {
		h := NewHeadless(log, true)
		p, err := h.StartProgress("Adding", 1)
		Expect(err).NotTo(HaveOccurred())
		p.Advance(models.Flashcard{Vocabulary: "猫"}, nil)
		p.Done()
		Expect(h.Notify("Completed", "done")).To(Succeed())
	})
})
