package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cetra3/dhash"
	"github.com/cetra3/dhash/internal/config"
	"github.com/cetra3/dhash/internal/imageio"
	"github.com/cetra3/dhash/internal/logging"
)

func newRootCommand() *cobra.Command {
	var (
		configFlag    string
		hexFlag       bool
		jsonFlag      bool
		tableFlag     bool
		thresholdFlag int
		logLevelFlag  string
		logFormatFlag string
	)

	rootCmd := &cobra.Command{
		Use:   "dhash <image> [<compare>]",
		Short: "Compute perceptual difference hashes of images",
		Long: `Compute perceptual difference hashes of images.

With one image path, dhash prints the 64-bit signature of that image. With
two paths, it prints both signatures, the Hamming distance between them,
and whether the images fall within the similarity threshold. A lower
distance means more similar images, with 0 being an exact signature match.`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFlag)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("threshold") {
				cfg.Threshold = thresholdFlag
			}
			if hexFlag {
				cfg.Output = "hex"
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevelFlag
			}
			if cmd.Flags().Changed("log-format") {
				cfg.LogFormat = logFormatFlag
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err := logging.New(logging.Options{
				Level:  cfg.LogLevel,
				Format: cfg.LogFormat,
			})
			if err != nil {
				return err
			}

			rep, err := hashImages(logger, cfg, args)
			if err != nil {
				return err
			}

			if jsonFlag {
				return writeJSON(cmd, rep)
			}
			if tableFlag && stdoutIsTerminal() {
				writeTable(cmd.OutOrStdout(), rep, cfg)
				return nil
			}
			writePlain(cmd.OutOrStdout(), rep, cfg)
			return nil
		},
	}

	rootCmd.Flags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.Flags().BoolVar(&hexFlag, "hex", false, "Print signatures as hexadecimal")
	rootCmd.Flags().BoolVar(&jsonFlag, "json", false, "Print machine-readable JSON output")
	rootCmd.Flags().BoolVar(&tableFlag, "table", false, "Print results as a table (terminals only)")
	rootCmd.Flags().IntVar(&thresholdFlag, "threshold", 0, "Largest distance at which images count as similar")
	rootCmd.Flags().StringVar(&logLevelFlag, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&logFormatFlag, "log-format", "", "Log format (text, json)")

	return rootCmd
}

// hashImages decodes and hashes every given path and, when two images were
// given, fills in their distance and the threshold verdict.
func hashImages(logger *slog.Logger, cfg config.Config, paths []string) (*report, error) {
	rep := &report{}
	for _, path := range paths {
		img, err := imageio.Open(path)
		if err != nil {
			return nil, err
		}
		signature := dhash.Hash(img)
		logger.Debug("hashed image",
			"path", path,
			"signature", signature.Hex(),
			"bounds", img.Bounds())
		rep.Images = append(rep.Images, imageReport{Path: path, Signature: signature})
	}

	if len(rep.Images) == 2 {
		distance := dhash.Distance(rep.Images[0].Signature, rep.Images[1].Signature)
		similar := distance <= cfg.Threshold
		rep.Distance = &distance
		rep.Similar = &similar
	}

	return rep, nil
}
