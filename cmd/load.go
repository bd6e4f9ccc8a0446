package cmd

import (
	"fmt"

	"asset-cache/core/render/software"
	"asset-cache/feature/assets"

	"github.com/spf13/cobra"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load the configured asset directories and print a summary",
	Long: `Runs the startup load described by the ASSETS_* settings with the software
renderer and reports how many entries each cache holds.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		defer logg.Sync()

		if cmd.Flags().Changed("conventional") {
			cfg.Assets.Conventional, _ = cmd.Flags().GetBool("conventional")
		}
		if cmd.Flags().Changed("policy") {
			cfg.Assets.Policy, _ = cmd.Flags().GetString("policy")
		}

		backend, err := software.New(cfg.Server.ScreenWidth, cfg.Server.ScreenHeight)
		if err != nil {
			return err
		}
		m, report, err := newManager(cmd.Context(), cfg, backend, logg)
		if err != nil {
			return err
		}

		fmt.Println("\n--- Asset Cache ---")
		for _, k := range assets.Kinds {
			sum := report[k]
			fmt.Printf("%-10s %4d cached  (%d loaded, %d failed, %d duplicates)\n",
				k, m.Len(k), sum.Loaded, sum.Failed, sum.Duplicates)
		}
		if verbose, _ := cmd.Flags().GetBool("names"); verbose {
			for _, k := range assets.Kinds {
				for _, name := range m.Names(k) {
					fmt.Printf("  %s/%s\n", k, name)
				}
			}
		}
		fmt.Println("-------------------")
		return nil
	},
}

func init() {
	loadCmd.Flags().Bool("conventional", false, "load assets/*.png and assets/sounds/*.wav")
	loadCmd.Flags().String("policy", "", "batch policy (concurrent, sequential)")
	loadCmd.Flags().Bool("names", false, "list every cached name")
	RootCmd.AddCommand(loadCmd)
}
