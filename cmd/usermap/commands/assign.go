package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func assignCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assign [prefix]",
		Short: "Print the identifier for a prefix, minting one if needed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := wire.Mapping.Assign(args[0])
			if err != nil {
				return err
			}
			fmt.Println(id)
			return nil
		},
	}
}
