package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [prefix]",
		Short: "Print the identifier stored for a user prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, ok, err := wire.Mapping.Get(args[0])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("no identifier stored for %q", args[0])
			}
			fmt.Println(id)
			return nil
		},
	}
}
