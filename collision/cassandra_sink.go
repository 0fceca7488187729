package collision

import (
	"fmt"

	"github.com/d3ce1t/flakeid/utils"
	"github.com/gocql/gocql"
)

// CassandraSink stores IDs in the generated_ids table. Inserts are
// lightweight transactions, so an ID written by any process is reported as a
// duplicate to every later writer.
type CassandraSink struct {
	session   *GocqlSession
	runID     string
	machineID uint16
}

func NewCassandraSink(session *GocqlSession, runID string, machineID uint16) *CassandraSink {
	return &CassandraSink{
		session:   session,
		runID:     runID,
		machineID: machineID,
	}
}

// CreateKeyspace must run on a session without keyspace.
func CreateKeyspace(session *GocqlSession, keyspace string, replicationFactor int) error {

	if err := checkSession(session); err != nil {
		return err
	}

	if keyspace == "" {
		return ErrNoKeyspace
	}

	if replicationFactor < 1 {
		return ErrBadReplicas
	}

	stmt := fmt.Sprintf(`CREATE KEYSPACE IF NOT EXISTS %s WITH replication =
		{'class': 'SimpleStrategy', 'replication_factor': %d}`, keyspace, replicationFactor)

	return session.Query(stmt).Exec()
}

func (d *CassandraSink) CreateSchema() error {

	if err := checkSession(d.session); err != nil {
		return err
	}

	stmt := `CREATE TABLE IF NOT EXISTS generated_ids (
		id bigint PRIMARY KEY,
		machine_id int,
		run_id text,
		created_date bigint
	)`

	return d.session.Query(stmt).Exec()
}

func (d *CassandraSink) Record(id uint64) (bool, error) {

	if err := checkSession(d.session); err != nil {
		return false, err
	}

	stmt := `INSERT INTO generated_ids (id, machine_id, run_id, created_date)
		VALUES (?, ?, ?, ?) IF NOT EXISTS`

	q := d.session.Query(stmt, int64(id), int(d.machineID), d.runID, utils.GetCurrentTimeMillis())
	applied, err := q.MapScanCAS(make(map[string]interface{}))
	if err != nil {
		return false, fmt.Errorf("record id %v: %w", id, err)
	}

	return applied, nil
}

// CountRun returns how many IDs were stored with the given run id. It scans
// the whole table, use it on test keyspaces only.
func (d *CassandraSink) CountRun(runID string) (int, error) {

	if err := checkSession(d.session); err != nil {
		return 0, err
	}

	stmt := `SELECT run_id FROM generated_ids`

	var rowRunID string
	count := 0

	iter := d.session.Query(stmt).Consistency(gocql.One).Iter()
	for iter.Scan(&rowRunID) {
		if rowRunID == runID {
			count++
		}
	}

	if err := iter.Close(); err != nil {
		return 0, err
	}

	return count, nil
}

func (d *CassandraSink) Truncate() error {
	if err := checkSession(d.session); err != nil {
		return err
	}
	return d.session.Query(`TRUNCATE generated_ids`).Exec()
}

func (d *CassandraSink) Close() error {
	d.session.Close()
	return nil
}

func checkSession(session *GocqlSession) error {
	if session == nil || !session.IsValid() {
		return ErrNoSession
	}
	return nil
}
