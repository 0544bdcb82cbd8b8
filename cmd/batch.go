package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"pipeflow/calculator"
	"pipeflow/model"
)

func newBatchCommand() *cobra.Command {
	var orientation, fluidsFile string
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Calculate the fluid catalogue and write workbooks and plots",
		RunE: func(cmd *cobra.Command, args []string) error {
			orients, err := orientations(orientation)
			if err != nil {
				return err
			}
			fluids, err := catalogue(fluidsFile)
			if err != nil {
				return err
			}
			return run(fluids, orients)
		},
	}
	cmd.Flags().StringVarP(&orientation, "orientation", "o", "both", "vertical, horizontal or both")
	cmd.Flags().StringVarP(&fluidsFile, "fluids", "f", "", "fluid catalogue json (defaults to the config value)")
	return cmd
}

func catalogue(path string) ([]model.Fluid, error) {
	if path == "" {
		path = cfg.FluidsFile
	}
	if path == "" {
		return calculator.DefaultFluids(), nil
	}
	fluids, err := calculator.LoadFluids(path)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{"path": path, "fluids": len(fluids)}).Info("读取流体物性")
	return fluids, nil
}
