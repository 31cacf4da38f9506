package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/tokenforge/corebpe/tokenizer"
)

// cliFlags holds the root persistent flags every subcommand reads to build
// its own Config and Tokenizer.
type cliFlags struct {
	encoding string
	cacheDir string
	baseURL  string
	offline  bool
	timeout  time.Duration
}

func newRootCmd() *cobra.Command {
	flags := &cliFlags{}

	root := &cobra.Command{
		Use:           "corebpe",
		Short:         "Byte-pair-encoding tokenizer for the public GPT-family encodings",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.encoding, "encoding", "cl100k_base", "bundled encoding name ("+joinNames(tokenizer.KnownEncodings())+")")
	pf.StringVar(&flags.cacheDir, "cache-dir", "", "vocabulary cache directory (default: loader's own default)")
	pf.StringVar(&flags.baseURL, "base-url", "", "base URL to fetch vocabulary files from (default: loader's own default)")
	pf.BoolVar(&flags.offline, "offline", false, "fail instead of downloading an uncached vocabulary")
	pf.DurationVar(&flags.timeout, "timeout", 0, "HTTP timeout for a vocabulary download (default: loader's own default)")

	root.AddCommand(newEncodeCmd(flags))
	root.AddCommand(newDecodeCmd(flags))
	root.AddCommand(newCountCmd(flags))

	return root
}

func (f *cliFlags) config() tokenizer.Config {
	cfg := tokenizer.DefaultConfig()
	if f.cacheDir != "" {
		cfg.CacheDir = f.cacheDir
	}
	if f.baseURL != "" {
		cfg.BaseURL = f.baseURL
	}
	if f.offline {
		cfg.Offline = true
	}
	if f.timeout > 0 {
		cfg.HTTPTimeout = f.timeout
	}
	return cfg
}

func (f *cliFlags) load() (*tokenizer.Tokenizer, error) {
	return tokenizer.LoadEncoding(f.config(), f.encoding)
}

func joinNames(names []string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ", "
		}
		out += n
	}
	return out
}
