package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"usermap/internal/resolve"
)

func resolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve [prefix]",
		Short: "Print the canonical storage key for a user prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := resolve.Key(args[0], wire.Mode, wire.Directory)
			if err != nil {
				return err
			}
			fmt.Println(key)
			return nil
		},
	}
}
