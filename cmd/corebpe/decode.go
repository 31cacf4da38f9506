package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newDecodeCmd(flags *cliFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <ids...>",
		Short: "Decode token ids back into text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]uint32, len(args))
			for i, a := range args {
				n, err := strconv.ParseUint(a, 10, 32)
				if err != nil {
					return fmt.Errorf("invalid token id %q: %w", a, err)
				}
				ids[i] = uint32(n)
			}
			tok, err := flags.load()
			if err != nil {
				return err
			}
			text, err := tok.Decode(ids)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
	return cmd
}
