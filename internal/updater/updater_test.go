package updater_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/iyulab/opencmd/internal/updater"
)

// fakeRelease builds a minimal GitHub releases/latest JSON response.
func fakeRelease(tag string, assets []string) []byte {
	type asset struct {
		Name               string `json:"name"`
		BrowserDownloadURL string `json:"browser_download_url"`
	}
	type release struct {
		TagName string  `json:"tag_name"`
		Assets  []asset `json:"assets"`
	}
	r := release{TagName: tag}
	for _, name := range assets {
		r.Assets = append(r.Assets, asset{
			Name:               name,
			BrowserDownloadURL: "http://example.com/" + name,
		})
	}
	b, _ := json.Marshal(r)
	return b
}

func releaseServer(t *testing.T, tag string, assets []string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write(fakeRelease(tag, assets))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCheck_NewerAvailable(t *testing.T) {
	srv := releaseServer(t, "v0.2.0", []string{
		updater.AssetName(runtime.GOOS, runtime.GOARCH),
	})

	c := &updater.Client{APIURL: srv.URL + "/latest"}
	info, err := c.Check("v0.1.0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !info.HasUpdate {
		t.Error("expected HasUpdate=true")
	}
	if info.LatestVersion != "v0.2.0" {
		t.Errorf("LatestVersion = %q, want v0.2.0", info.LatestVersion)
	}
	if info.DownloadURL == "" {
		t.Error("expected a DownloadURL for this platform")
	}
}

func TestCheck_AlreadyLatest(t *testing.T) {
	srv := releaseServer(t, "v0.1.0", nil)

	c := &updater.Client{APIURL: srv.URL + "/latest"}
	info, err := c.Check("v0.1.0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.HasUpdate {
		t.Error("expected HasUpdate=false")
	}
}

func TestCheck_DevVersionAlwaysUpdates(t *testing.T) {
	srv := releaseServer(t, "v0.0.1", nil)

	c := &updater.Client{APIURL: srv.URL + "/latest"}
	info, err := c.Check("dev")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !info.HasUpdate {
		t.Error("dev build should always see an update")
	}
}

func TestCheck_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := &updater.Client{APIURL: srv.URL}
	if _, err := c.Check("v0.1.0"); err == nil {
		t.Error("expected error on non-200 response")
	}
}

func TestAssetName(t *testing.T) {
	tests := []struct {
		goos, goarch, want string
	}{
		{"linux", "amd64", "opencmd-linux-amd64"},
		{"darwin", "arm64", "opencmd-darwin-arm64"},
		{"windows", "amd64", "opencmd-windows-amd64.exe"},
	}
	for _, tt := range tests {
		if got := updater.AssetName(tt.goos, tt.goarch); got != tt.want {
			t.Errorf("AssetName(%q, %q) = %q, want %q", tt.goos, tt.goarch, got, tt.want)
		}
	}
}

func TestDownload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("binary-content"))
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "opencmd.new")
	c := &updater.Client{}
	if err := c.Download(srv.URL, dest); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "binary-content" {
		t.Errorf("downloaded %q, want %q", data, "binary-content")
	}
}

func TestSelfReplace(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("cannot rename the running test binary path shape on windows CI")
	}
	dir := t.TempDir()
	exe := filepath.Join(dir, "opencmd")
	newBin := filepath.Join(dir, "opencmd.new")
	if err := os.WriteFile(exe, []byte("old"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(newBin, []byte("new"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := updater.SelfReplace(exe, newBin); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(exe)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "new" {
		t.Errorf("exe content = %q, want %q", data, "new")
	}
}
