package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCountCmd(flags *cliFlags) *cobra.Command {
	var allowAllSpecials bool

	cmd := &cobra.Command{
		Use:   "count [text]",
		Short: "Print the token count for text",
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
			if allowAllSpecials {
				ids, err = tok.EncodeWithAllSpecials(text)
			} else {
				ids, err = tok.EncodeOrdinary(text)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), len(ids))
			return nil
		},
	}
	cmd.Flags().BoolVar(&allowAllSpecials, "all-special", false, "recognize every special token the encoding defines")
	return cmd
}
