package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"usermap/internal/app"
)

var (
	dataDir       string
	modeFlag      string
	caseSensitive bool

	wire *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "usermap",
		Short: "Map chat users to third-party account identifiers",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.FromEnv()
			if err != nil {
				return err
			}
			if dataDir != "" {
				cfg.DataDir = dataDir
			}
			if cfg.DataDir == "" {
				home, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				cfg.DataDir = filepath.Join(home, ".usermap")
			}
			if modeFlag != "" {
				cfg.Mode = modeFlag
			}
			if caseSensitive {
				cfg.CaseSensitive = true
			}

			wire, err = app.NewWire(cfg)
			return err
		},
	}

	root.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data dir (default ~/.usermap)")
	root.PersistentFlags().StringVar(&modeFlag, "mode", "", "addressing mode: accounts, identhost or nicks")
	root.PersistentFlags().BoolVar(&caseSensitive, "case-sensitive", false, "keep the original case of keys")

	root.AddCommand(getCmd(), setCmd(), assignCmd(), resolveCmd(), userAddCmd())
	return root.Execute()
}
