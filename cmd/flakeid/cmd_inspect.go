package main

import (
	"fmt"
	"io"
	"time"

	"github.com/d3ce1t/flakeid/idgen"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

const (
	outputText = "text"
	outputYAML = "yaml"
)

var inspectOpts struct {
	encoding string
	output   string
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <id>",
	Short: "Show the fields of an ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {

		id, err := decodeID(args[0], inspectOpts.encoding)
		if err != nil {
			return err
		}

		ins, err := newInspection(id)
		if err != nil {
			return err
		}

		return ins.write(cmd.OutOrStdout(), inspectOpts.output)
	},
}

type inspection struct {
	idgen.Components `yaml:",inline"`

	ID        uint64            `yaml:"id"`
	Time      string            `yaml:"time"`
	Encodings map[string]string `yaml:"encodings"`
}

func newInspection(id uint64) (*inspection, error) {

	c := idgen.Decompose(id)

	ins := &inspection{
		ID:         id,
		Components: c,
		Time:       c.Time().Format(time.RFC3339Nano),
		Encodings:  make(map[string]string, len(encodings)),
	}

	for _, e := range encodings {
		value, err := encodeID(id, e)
		if err != nil {
			return nil, err
		}
		ins.Encodings[e] = value
	}

	return ins, nil
}

func (ins *inspection) write(w io.Writer, output string) error {

	switch output {

	case outputYAML:
		data, err := yaml.Marshal(ins)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err

	case outputText:
		fmt.Fprintf(w, "id:         %v\n", ins.ID)
		fmt.Fprintf(w, "time:       %v\n", ins.Time)
		fmt.Fprintf(w, "millis:     %v\n", ins.Millis)
		fmt.Fprintf(w, "machine id: %v\n", ins.MachineID)
		fmt.Fprintf(w, "sequence:   %v\n", ins.Sequence)
		for _, e := range encodings {
			fmt.Fprintf(w, "%-11v %v\n", e+":", ins.Encodings[e])
		}
		return nil
	}

	return fmt.Errorf("%w: %v", ErrUnknownOutput, output)
}

func init() {
	inspectCmd.Flags().StringVarP(&inspectOpts.encoding, "encoding", "e", encodingDecimal, "Encoding of the given id")
	inspectCmd.Flags().StringVarP(&inspectOpts.output, "output", "o", outputText, "text or yaml")
	rootCmd.AddCommand(inspectCmd)
}
