// Package updater handles self-update logic for the opencmd binary.
package updater

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"
	"strconv"
	"strings"
)

const defaultAPIURL = "https://api.github.com/repos/iyulab/opencmd/releases/latest"

// Client talks to the release host. The zero value uses the official GitHub
// releases endpoint and http.DefaultClient.
type Client struct {
	// APIURL is the releases/latest endpoint. Empty means the default.
	APIURL string
	// HTTP is the HTTP client used for all requests.
	HTTP *http.Client
}

// Info holds the result of a version check.
type Info struct {
	HasUpdate      bool
	CurrentVersion string
	LatestVersion  string
	DownloadURL    string
}

type githubRelease struct {
	TagName string        `json:"tag_name"`
	Assets  []githubAsset `json:"assets"`
}

type githubAsset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}

// Check queries the release host and reports whether a newer version than
// currentVersion is available, along with the download URL for this
// platform's binary.
func (c *Client) Check(currentVersion string) (*Info, error) {
	apiURL := c.APIURL
	if apiURL == "" {
		apiURL = defaultAPIURL
	}

	resp, err := c.httpClient().Get(apiURL) //nolint:noctx
	if err != nil {
		return nil, fmt.Errorf("updater: fetch releases: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("updater: release API returned %d", resp.StatusCode)
	}

	var release githubRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("updater: parse response: %w", err)
	}

	info := &Info{
		CurrentVersion: currentVersion,
		LatestVersion:  release.TagName,
		HasUpdate:      isNewer(currentVersion, release.TagName),
	}

	if info.HasUpdate {
		target := AssetName(runtime.GOOS, runtime.GOARCH)
		for _, a := range release.Assets {
			if a.Name == target {
				info.DownloadURL = a.BrowserDownloadURL
				break
			}
		}
	}

	return info, nil
}

// Download fetches url and writes the content to destPath with the
// executable bit set.
func (c *Client) Download(url, destPath string) error {
	resp, err := c.httpClient().Get(url) //nolint:noctx
	if err != nil {
		return fmt.Errorf("updater: download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("updater: download returned %d", resp.StatusCode)
	}

	f, err := os.OpenFile(destPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o755)
	if err != nil {
		return fmt.Errorf("updater: create dest file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, resp.Body); err != nil {
		return fmt.Errorf("updater: write download: %w", err)
	}
	return nil
}

// AssetName returns the expected release asset filename for the given
// OS/arch.
func AssetName(goos, goarch string) string {
	name := "opencmd-" + goos + "-" + goarch
	if goos == "windows" {
		name += ".exe"
	}
	return name
}

// SelfReplace atomically replaces exePath with newBinary. On Linux/macOS a
// rename is atomic on the same filesystem; on Windows the running exe is
// moved aside to .bak first since it cannot be overwritten in place.
func SelfReplace(exePath, newBinary string) error {
	if err := os.Chmod(newBinary, 0o755); err != nil {
		return fmt.Errorf("updater: chmod new binary: %w", err)
	}

	if runtime.GOOS == "windows" {
		bakPath := exePath + ".bak"
		_ = os.Remove(bakPath)
		if err := os.Rename(exePath, bakPath); err != nil {
			return fmt.Errorf("updater: rename current exe: %w", err)
		}
	}

	if err := os.Rename(newBinary, exePath); err != nil {
		return fmt.Errorf("updater: replace exe: %w", err)
	}
	return nil
}

// isNewer returns true if latest > current. A "dev" or empty current version
// is always considered older than any release.
func isNewer(current, latest string) bool {
	current = strings.TrimPrefix(current, "v")
	latest = strings.TrimPrefix(latest, "v")
	if current == "dev" || current == "" || current == "none" {
		return latest != ""
	}
	return semverLess(current, latest)
}

// semverLess returns true if a < b using major.minor.patch comparison.
func semverLess(a, b string) bool {
	pa := splitSemver(a)
	pb := splitSemver(b)
	for i := 0; i < 3; i++ {
		if pa[i] != pb[i] {
			return pa[i] < pb[i]
		}
	}
	return false
}

func splitSemver(v string) [3]int {
	parts := strings.SplitN(v, ".", 3)
	var out [3]int
	for i, p := range parts {
		out[i], _ = strconv.Atoi(p)
	}
	return out
}
