package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func userAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "useradd [hostmask] [account]",
		Short: "Register a hostmask under an account name in the directory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.Directory.Add(args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("Registered %s as %s\n", args[0], args[1])
			return nil
		},
	}
}
