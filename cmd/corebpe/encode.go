package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newEncodeCmd(flags *cliFlags) *cobra.Command {
	var allowSpecials []string
	var allowAllSpecials bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "encode [text]",
		Short: "Encode text into token ids",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readTextArg(args)
			if err != nil {
				return err
			}
			tok, err := flags.load()
			if err != nil {
				return err
			}

			var ids []uint32
			switch {
			case allowAllSpecials:
				ids, err = tok.EncodeWithAllSpecials(text)
			case len(allowSpecials) > 0:
				ids, err = tok.Encode(text, toAllowSet(allowSpecials))
			default:
				ids, err = tok.EncodeOrdinary(text)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return json.NewEncoder(out).Encode(ids)
			}
			for _, id := range ids {
				fmt.Fprintln(out, id)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&allowSpecials, "allow-special", nil, "special token spelling to recognize (repeatable)")
	cmd.Flags().BoolVar(&allowAllSpecials, "all-special", false, "recognize every special token the encoding defines")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print ids as a JSON array instead of one per line")
	return cmd
}

// readTextArg returns args[0] if given, else reads all of stdin.
func readTextArg(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimSuffix(string(b), "\n"), nil
}

func toAllowSet(specials []string) map[string]struct{} {
	out := make(map[string]struct{}, len(specials))
	for _, s := range specials {
		out[s] = struct{}{}
	}
	return out
}
