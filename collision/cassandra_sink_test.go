package collision

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twinj/uuid"
)

const testKeyspace = "flakeid_test"

// Cassandra tests run only when FLAKEID_CASSANDRA_HOSTS lists reachable
// nodes, e.g. FLAKEID_CASSANDRA_HOSTS=127.0.0.1
func connectTestSink(t *testing.T, runID string, machineID uint16) *CassandraSink {

	hosts := os.Getenv("FLAKEID_CASSANDRA_HOSTS")
	if hosts == "" {
		t.Skip("FLAKEID_CASSANDRA_HOSTS not set")
	}

	admin := NewSession("", 4, strings.Split(hosts, ",")...)
	require.NoError(t, admin.Connect())
	require.NoError(t, CreateKeyspace(admin, testKeyspace, 1))
	admin.Close()

	session := NewSession(testKeyspace, 4, strings.Split(hosts, ",")...)
	require.NoError(t, session.Connect())

	sink := NewCassandraSink(session, runID, machineID)
	require.NoError(t, sink.CreateSchema())
	t.Cleanup(func() { sink.Close() })

	return sink
}

func TestCassandraSinkWithoutSession(t *testing.T) {

	sink := NewCassandraSink(NewSession(testKeyspace, 4, "127.0.0.1"), "run", 1)

	_, err := sink.Record(1)
	assert.ErrorIs(t, err, ErrNoSession)
	assert.ErrorIs(t, sink.CreateSchema(), ErrNoSession)
	assert.ErrorIs(t, CreateKeyspace(nil, testKeyspace, 1), ErrNoSession)
}

func TestCassandraSinkRecord(t *testing.T) {

	runID := uuid.NewV4().String()
	sink := connectTestSink(t, runID, 1)
	require.NoError(t, sink.Truncate())

	isNew, err := sink.Record(1001)
	require.NoError(t, err)
	assert.True(t, isNew)

	isNew, err = sink.Record(1001)
	require.NoError(t, err)
	assert.False(t, isNew)

	count, err := sink.CountRun(runID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCassandraSinkSharedAcrossMachines(t *testing.T) {

	runID := uuid.NewV4().String()
	first := connectTestSink(t, runID, 1)
	second := connectTestSink(t, runID, 2)
	require.NoError(t, first.Truncate())

	isNew, err := first.Record(2002)
	require.NoError(t, err)
	assert.True(t, isNew)

	isNew, err = second.Record(2002)
	require.NoError(t, err)
	assert.False(t, isNew)
}
