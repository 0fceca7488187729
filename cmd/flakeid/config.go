package main

import (
	"github.com/d3ce1t/flakeid/idgen"
)

type Config struct {
	data ConfigDTO
}

func (c *Config) MachineID() uint16 {
	return uint16(c.data.MachineID)
}

func (c *Config) CassandraEnabled() bool {
	return len(c.data.CassandraHosts) > 0
}

func (c *Config) CassandraHosts() []string {
	return c.data.CassandraHosts
}

func (c *Config) Keyspace() string {
	return c.data.Keyspace
}

func (c *Config) CQLVersion() int {
	return c.data.CQLVersion
}

func (c *Config) ReplicationFactor() int {
	return c.data.ReplicationFactor
}

func (c *Config) CreateSchema() bool {
	return c.data.CreateSchema
}

type ConfigDTO struct {
	MachineID         int      `yaml:"machine_id"`
	CassandraHosts    []string `yaml:"cassandra_hosts,flow,omitempty"`
	Keyspace          string   `yaml:"keyspace,omitempty"`
	CQLVersion        int      `yaml:"cql_version,omitempty"`
	ReplicationFactor int      `yaml:"replication_factor,omitempty"`
	CreateSchema      bool     `yaml:"create_schema,omitempty"`
}

// newConfig validates flag values and fills in defaults. A negative machine
// id means MACHINE_ID decides.
func newConfig(dto ConfigDTO) (*Config, error) {

	config := &Config{data: dto}

	if config.data.MachineID < 0 {
		config.data.MachineID = int(idgen.MachineIDFromEnv() & idgen.MaxMachineID)
	}

	if config.data.MachineID > int(idgen.MaxMachineID) {
		return nil, ErrInvalidMachineID
	}

	// Set defaults if values are unset

	if config.data.Keyspace == "" {
		config.data.Keyspace = appName
	}

	if config.data.CQLVersion == 0 {
		config.data.CQLVersion = 4
	}

	if config.data.CQLVersion < 2 || config.data.CQLVersion > 4 {
		return nil, ErrInvalidCQL
	}

	if config.data.ReplicationFactor == 0 {
		config.data.ReplicationFactor = 1
	}

	return config, nil
}

func (c *Config) newGenerator() *idgen.Generator {
	return idgen.New(idgen.WithMachineID(c.MachineID()))
}
