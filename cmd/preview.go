package cmd

import (
	"asset-cache/core/render/ebitengine"
	"asset-cache/core/scan"
	"asset-cache/feature/assets"
	"asset-cache/feature/preview"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Open a window showing the conventional asset layout",
	Long: `Loads assets/*.png and assets/sounds/*.wav with the GPU renderer and shows
every texture. Space plays the next sound, P adds a placeholder.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		defer logg.Sync()

		backend, err := ebitengine.New(nil, ebitengine.DefaultSampleRate)
		if err != nil {
			return err
		}
		opts, err := assets.ConfigOptions(cfg.Assets)
		if err != nil {
			return err
		}
		m := assets.New(backend, scan.FS{Root: cfg.Assets.Root}, logg, opts...)

		g := preview.New(backend, m, logg, cfg.Server.ScreenWidth, cfg.Server.ScreenHeight)
		if err := g.Load(cmd.Context()); err != nil {
			return err
		}

		ebiten.SetWindowSize(cfg.Server.ScreenWidth, cfg.Server.ScreenHeight)
		ebiten.SetWindowTitle("asset-cache preview")
		return ebiten.RunGame(g)
	},
}

func init() {
	RootCmd.AddCommand(previewCmd)
}
