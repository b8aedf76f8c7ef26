package main

import (
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/palettecore/internal/version"
)

var (
	flagVerbose bool
	flagQuiet   bool
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "paletteextract",
		Short: "Extract a color palette from an image",
		Long: `paletteextract analyses a raster image and produces a set of
representative colors using k-means or DBSCAN clustering over CIE L*a*b*
color and pixel position.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "log errors only")
	root.SetVersionTemplate(version.String() + "\n")

	root.AddCommand(newExtractCmd())
	return root
}

// newLogger returns a logger whose level reflects the --verbose/--quiet flags.
func newLogger() hclog.Logger {
	level := hclog.Info
	switch {
	case flagQuiet:
		level = hclog.Error
	case flagVerbose:
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:  "paletteextract",
		Level: level,
	})
}
