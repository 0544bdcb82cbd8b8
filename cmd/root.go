package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"pipeflow/calculator"
	"pipeflow/export"
	"pipeflow/model"
)

var (
	cfgPath string
	verbose bool
	cfg     calculator.Config
)

func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "pipeflow",
		Short:         "Pipe flow thermal-hydraulic metrics for a set of fluids",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
			var err error
			cfg, err = calculator.LoadConfig(cfgPath)
			return err
		},
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", calculator.DefaultConfigPath, "ini configuration file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(newBatchCommand(), newPromptCommand(), newServeCommand())
	return root
}

func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		log.Fatal(err)
	}
}

// orientations expands "both" into the two presets.
func orientations(s string) ([]model.Orientation, error) {
	if s == "both" {
		return []model.Orientation{model.Vertical, model.Horizontal}, nil
	}
	o, err := model.ParseOrientation(s)
	if err != nil {
		return nil, err
	}
	return []model.Orientation{o}, nil
}

// run calculates and exports the fluids for each orientation.
func run(fluids []model.Fluid, orients []model.Orientation) error {
	c := calculator.NewCalculator(cfg)
	for _, o := range orients {
		c.SetOrientation(o)
		results, rejected := c.CalculateAll(fluids)
		paths, err := export.All(cfg.OutputRoot, o, c.Sweep().Lengths(), results)
		if err != nil {
			return err
		}
		log.WithFields(log.Fields{
			"orientation": o,
			"fluids":      len(results),
			"rejected":    len(rejected),
			"files":       len(paths),
		}).Info("导出完成")
	}
	return nil
}
