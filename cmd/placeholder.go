package cmd

import (
	"fmt"
	"image/png"
	"os"

	"asset-cache/core/render/software"
	"asset-cache/core/scan"
	"asset-cache/feature/assets"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var placeholderCmd = &cobra.Command{
	Use:   "placeholder [text]",
	Short: "Render a text placeholder texture to a PNG file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logg, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		defer logg.Sync()

		fill, _ := cmd.Flags().GetString("color")
		width, _ := cmd.Flags().GetInt("width")
		height, _ := cmd.Flags().GetInt("height")
		out, _ := cmd.Flags().GetString("out")

		c, err := assets.ParseColor(fill)
		if err != nil {
			return err
		}
		backend, err := software.New(width, height)
		if err != nil {
			return err
		}
		m := assets.New(backend, scan.FS{}, logg)

		tex, err := m.AddGetPlaceholder(args[0], c, width, height, nil)
		if err != nil {
			return err
		}
		img, err := m.TexToImage(args[0])
		if err != nil {
			return err
		}

		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", out, err)
		}
		defer f.Close()
		if err := png.Encode(f, img.RGBA()); err != nil {
			return fmt.Errorf("failed to encode %s: %w", out, err)
		}

		w, h := tex.Size()
		logg.Info("Placeholder written", zap.String("file", out), zap.Int("width", w), zap.Int("height", h))
		return nil
	},
}

func init() {
	placeholderCmd.Flags().String("color", "magenta", "fill color (name or #rrggbb[aa])")
	placeholderCmd.Flags().Int("width", 64, "width in pixels")
	placeholderCmd.Flags().Int("height", 32, "height in pixels")
	placeholderCmd.Flags().StringP("out", "o", "placeholder.png", "output file")
	RootCmd.AddCommand(placeholderCmd)
}
