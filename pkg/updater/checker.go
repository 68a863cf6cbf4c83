package updater

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/kpauljoseph/vocabankify/pkg/logger"
	"github.com/kpauljoseph/vocabankify/pkg/version"
)

const userAgent = "Vocabankify-Updater"

var ErrNoEndpoint = errors.New("no update endpoint configured")

type Checker struct {
	client         *http.Client
	logger         *logger.Logger
	primaryURL     string
	githubURL      string
	currentVersion string
}

type Option func(*Checker)

func WithHTTPClient(client *http.Client) Option {
	return func(c *Checker) {
		c.client = client
	}
}

// WithEndpoints sets the release endpoints: a JSON manifest and a GitHub
// latest-release URL. An empty URL skips that source.
func WithEndpoints(primaryURL, githubURL string) Option {
	return func(c *Checker) {
		c.primaryURL = primaryURL
		c.githubURL = githubURL
	}
}

func WithCurrentVersion(v string) Option {
	return func(c *Checker) {
		c.currentVersion = v
	}
}

func NewChecker(logger *logger.Logger, options ...Option) *Checker {
	c := &Checker{
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger:         logger,
		currentVersion: version.Version,
	}

	for _, opt := range options {
		opt(c)
	}

	return c
}

func (c *Checker) CheckForUpdates(ctx context.Context) (*UpdateInfo, error) {
	if c.primaryURL == "" && c.githubURL == "" {
		return nil, ErrNoEndpoint
	}
	c.logger.Debug("Checking for updates...")

	if c.primaryURL != "" {
		info, err := c.checkPrimaryEndpoint(ctx)
		if err == nil {
			return info, nil
		}
		if c.githubURL == "" {
			return nil, err
		}
		c.logger.Debug("Primary endpoint failed, falling back to GitHub: %v", err)
	}
	return c.checkGitHubAPI(ctx)
}

func (c *Checker) get(ctx context.Context, url string, target interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Checker) checkPrimaryEndpoint(ctx context.Context) (*UpdateInfo, error) {
	var versionInfo VersionResponse
	if err := c.get(ctx, c.primaryURL, &versionInfo); err != nil {
		return nil, err
	}

	currentVersion := strings.TrimPrefix(c.currentVersion, "v")
	latestVersion := strings.TrimPrefix(versionInfo.LatestVersion, "v")

	downloadURL, ok := versionInfo.PlatformDownloads[platformKey()]
	if !ok {
		downloadURL = versionInfo.DownloadURL
	}
	if downloadURL == "" {
		return nil, fmt.Errorf("no download available for platform %s", platformKey())
	}

	return &UpdateInfo{
		CurrentVersion: currentVersion,
		LatestVersion:  latestVersion,
		UpdateMessage:  versionInfo.UpdateMessage,
		DownloadURL:    downloadURL,
		IsAvailable:    compareVersions(currentVersion, latestVersion) < 0,
		ForceUpdate:    versionInfo.ForceUpdate || compareVersions(currentVersion, strings.TrimPrefix(versionInfo.MinVersion, "v")) < 0,
	}, nil
}

func (c *Checker) checkGitHubAPI(ctx context.Context) (*UpdateInfo, error) {
	var release GitHubRelease
	if err := c.get(ctx, c.githubURL, &release); err != nil {
		return nil, fmt.Errorf("GitHub release check failed: %w", err)
	}

	currentVersion := strings.TrimPrefix(c.currentVersion, "v")
	latestVersion := strings.TrimPrefix(release.TagName, "v")

	return &UpdateInfo{
		CurrentVersion: currentVersion,
		LatestVersion:  latestVersion,
		UpdateMessage:  release.Body,
		DownloadURL:    release.HTMLURL,
		IsAvailable:    compareVersions(currentVersion, latestVersion) < 0,
	}, nil
}

func platformKey() string {
	if runtime.GOOS == "darwin" {
		return "darwin/all"
	}
	return fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
}

// compareVersions returns:
//
//	-1 if v1 < v2
//	 0 if v1 == v2
//	 1 if v1 > v2
//
// Numeric parts compare as numbers and rank above non-numeric ones, which
// compare as text. An empty v2 never counts as newer.
func compareVersions(v1, v2 string) int {
	if v2 == "" {
		return 1
	}
	parts1 := strings.Split(v1, ".")
	parts2 := strings.Split(v2, ".")

	for i := 0; i < len(parts1) && i < len(parts2); i++ {
		if c := comparePart(parts1[i], parts2[i]); c != 0 {
			return c
		}
	}

	if len(parts1) < len(parts2) {
		return -1
	}
	if len(parts1) > len(parts2) {
		return 1
	}
	return 0
}

func comparePart(a, b string) int {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	if errA == nil && errB == nil {
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		}
		return 0
	}
	// unreleased builds carry a placeholder instead of a number
	if errA == nil {
		return 1
	}
	if errB == nil {
		return -1
	}
	return strings.Compare(a, b)
}
