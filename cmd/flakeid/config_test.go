package main

import (
	"testing"

	"github.com/d3ce1t/flakeid/idgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {

	config, err := newConfig(ConfigDTO{MachineID: 12})
	require.NoError(t, err)

	assert.Equal(t, uint16(12), config.MachineID())
	assert.Equal(t, appName, config.Keyspace())
	assert.Equal(t, 4, config.CQLVersion())
	assert.Equal(t, 1, config.ReplicationFactor())
	assert.False(t, config.CassandraEnabled())
	assert.False(t, config.CreateSchema())
}

func TestNewConfigMachineIDFromEnv(t *testing.T) {

	t.Setenv(idgen.MachineIDEnv, "33")

	config, err := newConfig(ConfigDTO{MachineID: -1})
	require.NoError(t, err)
	assert.Equal(t, uint16(33), config.MachineID())
}

func TestNewConfigInvalid(t *testing.T) {

	_, err := newConfig(ConfigDTO{MachineID: 1024})
	assert.ErrorIs(t, err, ErrInvalidMachineID)

	_, err = newConfig(ConfigDTO{CQLVersion: 5})
	assert.ErrorIs(t, err, ErrInvalidCQL)
}

func TestNewConfigCassandra(t *testing.T) {

	config, err := newConfig(ConfigDTO{CassandraHosts: []string{"10.0.0.1", "10.0.0.2"}, Keyspace: "ids", CQLVersion: 3})
	require.NoError(t, err)

	assert.True(t, config.CassandraEnabled())
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, config.CassandraHosts())
	assert.Equal(t, "ids", config.Keyspace())
	assert.Equal(t, 3, config.CQLVersion())
}
