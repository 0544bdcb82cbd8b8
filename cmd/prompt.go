package cmd

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"pipeflow/model"
)

func newPromptCommand() *cobra.Command {
	var orientation string
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Enter fluids interactively, then calculate and export",
		RunE: func(cmd *cobra.Command, args []string) error {
			orients, err := orientations(orientation)
			if err != nil {
				return err
			}
			fluids, err := readFluids(os.Stdin, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return run(fluids, orients)
		},
	}
	cmd.Flags().StringVarP(&orientation, "orientation", "o", "vertical", "vertical, horizontal or both")
	return cmd
}

// readFluids asks for fluid names until an empty line, then for the
// properties of each fluid. Values that are not positive numbers are asked
// again.
func readFluids(in io.Reader, out io.Writer) ([]model.Fluid, error) {
	sc := bufio.NewScanner(in)
	fmt.Fprintln(out, "Enter fluid names. Press enter to stop recording")

	var names []string
	for {
		fmt.Fprint(out, "Fluid name: ")
		if !sc.Scan() {
			break
		}
		name := strings.TrimSpace(sc.Text())
		if name == "" {
			break
		}
		names = append(names, name)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	fluids := make([]model.Fluid, 0, len(names))
	for _, name := range names {
		fmt.Fprintf(out, "<------------Calculating for %s-------------->\n", name)
		shc, err := readPositive(sc, out, "Enter specific heat capacity: ")
		if err != nil {
			return nil, err
		}
		viscosity, err := readPositive(sc, out, "Enter the dynamic viscosity: ")
		if err != nil {
			return nil, err
		}
		density, err := readPositive(sc, out, "Enter the density of the fluid: ")
		if err != nil {
			return nil, err
		}
		fluids = append(fluids, model.Fluid{
			Name:                 name,
			Density:              density,
			SpecificHeatCapacity: shc,
			DynamicViscosity:     viscosity,
		})
	}
	return fluids, nil
}

func readPositive(sc *bufio.Scanner, out io.Writer, prompt string) (float64, error) {
	for {
		fmt.Fprint(out, prompt)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, err
			}
			return 0, io.ErrUnexpectedEOF
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(sc.Text()), 64)
		if err != nil || !(v > 0) || math.IsInf(v, 0) {
			fmt.Fprintln(out, "invalid value, enter a positive number")
			continue
		}
		return v, nil
	}
}
