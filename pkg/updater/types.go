package updater

// VersionResponse is the release manifest served by the primary endpoint.
type VersionResponse struct {
	LatestVersion     string            `json:"latest_version"`
	MinVersion        string            `json:"min_version"`
	DownloadURL       string            `json:"download_url"`
	UpdateMessage     string            `json:"update_message"`
	ForceUpdate       bool              `json:"force_update"`
	PlatformDownloads map[string]string `json:"platform_downloads"`
}

type UpdateInfo struct {
	CurrentVersion string
	LatestVersion  string
	UpdateMessage  string
	DownloadURL    string
	IsAvailable    bool
	ForceUpdate    bool
}

// GitHubRelease holds the fields read from the latest-release API.
type GitHubRelease struct {
	TagName string `json:"tag_name"`
	Body    string `json:"body"`
	HTMLURL string `json:"html_url"`
}
