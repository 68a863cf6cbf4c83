package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/viper"

	"github.com/kpauljoseph/vocabankify/internal/config"
)

var _ = Describe("Config", func() {
	var testDir string

	BeforeEach(func() {
		var err error
		testDir, err = os.MkdirTemp("", "config-test-*")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(testDir)
	})

	writeConfig := func(content string) string {
		path := filepath.Join(testDir, "vocabankify.yaml")
		Expect(os.WriteFile(path, []byte(content), 0644)).To(Succeed())
		return path
	}

	It("should provide defaults", func() {
		cfg := config.Default()
		Expect(cfg.Anki.URL).To(Equal("http://localhost:8765"))
		Expect(cfg.Anki.Timeout).To(Equal(10 * time.Second))
		Expect(cfg.Anki.ModelName).To(Equal("Basic"))
		Expect(cfg.Anki.FrontField).To(Equal("Front"))
		Expect(cfg.Anki.BackField).To(Equal("Back"))
		Expect(cfg.Export.Output).To(Equal("output.csv"))
		Expect(cfg.Deck.Name).To(BeEmpty())
	})

	It("should load values from YAML and fill the gaps", func() {
		path := writeConfig(`
anki:
  url: http://127.0.0.1:9999
  timeout: 3s
  tags: [japanese, n5]
deck:
  name: Japanese::Vocab
log:
  verbose: true
`)
		cfg, err := config.Load(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Anki.URL).To(Equal("http://127.0.0.1:9999"))
		Expect(cfg.Anki.Timeout).To(Equal(3 * time.Second))
		Expect(cfg.Anki.Tags).To(Equal([]string{"japanese", "n5"}))
		Expect(cfg.Anki.ModelName).To(Equal("Basic"))
		Expect(cfg.Deck.Name).To(Equal("Japanese::Vocab"))
		Expect(cfg.Log.Verbose).To(BeTrue())
	})

	It("should fail on a missing file", func() {
		_, err := config.Load(filepath.Join(testDir, "nope.yaml"))
		Expect(os.IsNotExist(err)).To(BeTrue())
	})

	It("should fail on malformed YAML", func() {
		path := writeConfig("anki: [unterminated")
		_, err := config.Load(path)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("failed to parse config"))
	})

	It("should save a config that loads back", func() {
		path := filepath.Join(testDir, "saved.yaml")
		cfg := config.Default()
		cfg.Deck.Root = "Languages"
		Expect(cfg.Save(path)).To(Succeed())

		loaded, err := config.Load(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(loaded).To(Equal(cfg))

		Expect(cfg.Save(path)).NotTo(Succeed())
	})

	Context("with viper overrides", func() {
		It("should only override keys that are set", func() {
			v := viper.New()
			v.Set("anki.url", "http://mock:1234")
			v.Set("deck.name", "Override")
			v.Set("anki.timeout", "250ms")

			cfg := config.Default()
			cfg.Deck.Root = "kept"
			cfg.ApplyOverrides(v)

			Expect(cfg.Anki.URL).To(Equal("http://mock:1234"))
			Expect(cfg.Anki.Timeout).To(Equal(250 * time.Millisecond))
			Expect(cfg.Deck.Name).To(Equal("Override"))
			Expect(cfg.Deck.Root).To(Equal("kept"))
			Expect(cfg.Anki.ModelName).To(Equal("Basic"))
		})

		It("should leave update checks off unless endpoints are set", func() {
			Expect(config.Default().Update).To(Equal(config.UpdateConfig{}))

			v := viper.New()
			v.Set("update.manifest_url", "http://releases.local/version.json")
			cfg := config.Default()
			cfg.ApplyOverrides(v)
			Expect(cfg.Update.ManifestURL).To(Equal("http://releases.local/version.json"))
			Expect(cfg.Update.GitHubURL).To(BeEmpty())
		})

		It("should read prefixed environment variables", func() {
			Expect(os.Setenv("VOCABANKIFY_ANKI_URL", "http://env:8765")).To(Succeed())
			DeferCleanup(os.Unsetenv, "VOCABANKIFY_ANKI_URL")

			v := viper.New()
			v.SetEnvPrefix(config.EnvPrefix)
			v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
			v.AutomaticEnv()

			cfg := config.Default()
			cfg.ApplyOverrides(v)
			Expect(cfg.Anki.URL).To(Equal("http://env:8765"))
		})
	})
})
