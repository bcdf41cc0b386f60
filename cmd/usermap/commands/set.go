package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"usermap/internal/domain"
)

func setCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set [prefix] [identifier]",
		Short: "Store an identifier for a user prefix",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.Mapping.Set(args[0], domain.AccountID(args[1])); err != nil {
				return err
			}
			fmt.Printf("Stored identifier for %s\n", args[0])
			return nil
		},
	}
}
