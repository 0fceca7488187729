package main

import (
	"fmt"

	"github.com/d3ce1t/flakeid/idgen"
	"github.com/spf13/cobra"
)

var nextOpts struct {
	count     int
	machineID int
	encoding  string
}

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Print new IDs",
	RunE: func(cmd *cobra.Command, args []string) error {

		if nextOpts.count < 1 {
			return ErrInvalidCount
		}

		gen, err := nextGenerator(nextOpts.machineID)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for i := 0; i < nextOpts.count; i++ {
			value, err := encodeID(gen.NextID(), nextOpts.encoding)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, value)
		}

		return nil
	},
}

// The process wide generator unless a machine id was given explicitly
func nextGenerator(machineID int) (*idgen.Generator, error) {

	if machineID < 0 {
		return idgen.Default(), nil
	}

	config, err := newConfig(ConfigDTO{MachineID: machineID})
	if err != nil {
		return nil, err
	}

	return config.newGenerator(), nil
}

func init() {
	nextCmd.Flags().IntVarP(&nextOpts.count, "count", "n", 1, "Number of IDs")
	nextCmd.Flags().IntVar(&nextOpts.machineID, "machine-id", -1, "Machine id (default from "+idgen.MachineIDEnv+")")
	nextCmd.Flags().StringVarP(&nextOpts.encoding, "encoding", "e", encodingDecimal, "Output encoding")
	rootCmd.AddCommand(nextCmd)
}
