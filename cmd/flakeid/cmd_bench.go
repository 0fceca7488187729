package main

import (
	"fmt"
	"io"

	"github.com/d3ce1t/flakeid/bench"
	"github.com/d3ce1t/flakeid/collision"
	"github.com/d3ce1t/flakeid/idgen"
	"github.com/spf13/cobra"
	"github.com/twinj/uuid"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

var benchOpts struct {
	config     ConfigDTO
	numTimes   int
	numWorkers int
	bins       int
	output     string
}

// flakeid bench -n 1000000 -c 8
// flakeid bench -n 10000 -c 4 --machine-id 3 --cassandra 127.0.0.1 --create-schema
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Generate IDs from concurrent workers and check them for duplicates",
	RunE: func(cmd *cobra.Command, args []string) error {

		config, err := newConfig(benchOpts.config)
		if err != nil {
			return err
		}

		runID := uuid.NewV4().String()
		log := zap.L().With(zap.String("run_id", runID), zap.Uint16("machine_id", config.MachineID()))

		sink, err := openSink(config, runID)
		if err != nil {
			return err
		}
		defer sink.Close()

		gen := config.newGenerator()

		log.Info("bench starting",
			zap.Int("calls", benchOpts.numTimes),
			zap.Int("workers", benchOpts.numWorkers),
			zap.Bool("cassandra", config.CassandraEnabled()))

		report, err := bench.Run(gen, bench.Options{
			NumTimes:   benchOpts.numTimes,
			NumWorkers: benchOpts.numWorkers,
			Sink:       sink,
			Logger:     log,
		})
		if err != nil {
			return err
		}

		result := &benchResult{
			RunID:     runID,
			Config:    config.data,
			Report:    report,
			Generator: gen.Stats(),
		}

		return result.write(cmd.OutOrStdout(), benchOpts.output, benchOpts.bins)
	},
}

type benchResult struct {
	RunID     string        `yaml:"run_id"`
	Config    ConfigDTO     `yaml:"config"`
	Report    *bench.Report `yaml:"report"`
	Generator idgen.Stats   `yaml:"generator"`
}

func (r *benchResult) write(w io.Writer, output string, bins int) error {

	switch output {

	case outputYAML:
		data, err := yaml.Marshal(r)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err

	case outputText:
		for workerID, stats := range r.Report.Workers {
			fmt.Fprintf(w, "Worker: %3v | %v\n", workerID, stats)
		}
		fmt.Fprintf(w, "Global: %v | %v\n", "---", r.Report.Global)
		fmt.Fprintf(w, "Generator: activations: %v | retirements: %v | overflows: %v\n",
			r.Generator.Activations, r.Generator.Retirements, r.Generator.Overflows)
		fmt.Fprintf(w, "\nLatency (us):\n")
		return r.Report.PrintHistogram(w, bins)
	}

	return fmt.Errorf("%w: %v", ErrUnknownOutput, output)
}

func openSink(config *Config, runID string) (collision.Sink, error) {

	if !config.CassandraEnabled() {
		return collision.NewMemorySink(), nil
	}

	if config.CreateSchema() {
		admin := collision.NewSession("", config.CQLVersion(), config.CassandraHosts()...)
		if err := admin.Connect(); err != nil {
			return nil, fmt.Errorf("connect to cassandra: %w", err)
		}
		err := collision.CreateKeyspace(admin, config.Keyspace(), config.ReplicationFactor())
		admin.Close()
		if err != nil {
			return nil, fmt.Errorf("create keyspace: %w", err)
		}
	}

	session := collision.NewSession(config.Keyspace(), config.CQLVersion(), config.CassandraHosts()...)
	if err := session.Connect(); err != nil {
		return nil, fmt.Errorf("connect to cassandra: %w", err)
	}

	sink := collision.NewCassandraSink(session, runID, config.MachineID())

	if config.CreateSchema() {
		if err := sink.CreateSchema(); err != nil {
			sink.Close()
			return nil, fmt.Errorf("create schema: %w", err)
		}
	}

	return sink, nil
}

func init() {
	flags := benchCmd.Flags()
	flags.IntVarP(&benchOpts.numTimes, "count", "n", 100000, "Times NextID will be called")
	flags.IntVarP(&benchOpts.numWorkers, "concurrency", "c", 1, "Number of concurrent workers")
	flags.IntVar(&benchOpts.bins, "histogram-bins", 10, "Latency histogram bins, 0 disables it")
	flags.StringVarP(&benchOpts.output, "output", "o", outputText, "text or yaml")
	flags.IntVar(&benchOpts.config.MachineID, "machine-id", -1, "Machine id (default from "+idgen.MachineIDEnv+")")
	flags.StringSliceVar(&benchOpts.config.CassandraHosts, "cassandra", nil, "Cassandra hosts, IDs are checked against the generated_ids table")
	flags.StringVarP(&benchOpts.config.Keyspace, "keyspace", "k", "", "Keyspace (default "+appName+")")
	flags.IntVar(&benchOpts.config.CQLVersion, "cql-version", 0, "CQL protocol version (default 4)")
	flags.IntVar(&benchOpts.config.ReplicationFactor, "replication-factor", 0, "Replication factor when creating the keyspace (default 1)")
	flags.BoolVar(&benchOpts.config.CreateSchema, "create-schema", false, "Create keyspace and table if missing")
	rootCmd.AddCommand(benchCmd)
}
