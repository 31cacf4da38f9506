package tokenizer

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// defaultBaseURL matches the host the upstream tiktoken/Harmony
// distributions publish their .tiktoken vocabulary files from.
const defaultBaseURL = "https://openaipublic.blob.core.windows.net/encodings/"

// Config holds the vocabulary loader's tunables. It has no bearing on the
// core's encode/merge semantics; it only parameterizes where LoadEncoding
// looks for and caches vocabulary files.
type Config struct {
	// CacheDir is where downloaded .tiktoken files are kept between runs.
	CacheDir string
	// BaseURL is where vocabulary files are fetched from when not cached.
	BaseURL string
	// Offline, when set, makes the loader fail instead of reaching the
	// network on a cache miss.
	Offline bool
	// HTTPTimeout bounds a single download.
	HTTPTimeout time.Duration
}

// DefaultConfig builds a Config from environment variables
// (COREBPE_CACHE_DIR, COREBPE_ENCODINGS_BASE_URL, COREBPE_OFFLINE,
// COREBPE_HTTP_TIMEOUT), falling back to built-in defaults so the loader
// works correctly with zero configuration.
func DefaultConfig() Config {
	v := viper.New()
	v.SetEnvPrefix("COREBPE")
	v.AutomaticEnv()
	v.SetDefault("cache_dir", filepath.Join(os.TempDir(), "corebpe-cache"))
	v.SetDefault("encodings_base_url", defaultBaseURL)
	v.SetDefault("offline", false)
	v.SetDefault("http_timeout", 30*time.Second)

	return Config{
		CacheDir:    v.GetString("cache_dir"),
		BaseURL:     normalizeBaseURL(v.GetString("encodings_base_url")),
		Offline:     v.GetBool("offline"),
		HTTPTimeout: v.GetDuration("http_timeout"),
	}
}

func normalizeBaseURL(base string) string {
	if base == "" {
		return defaultBaseURL
	}
	if !strings.HasSuffix(base, "/") {
		return base + "/"
	}
	return base
}
