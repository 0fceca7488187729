package collision

import (
	"time"

	"github.com/gocql/gocql"
)

func NewSession(keyspace string, cqlVersion int, hosts ...string) *GocqlSession {
	session := &GocqlSession{}
	session.cluster = gocql.NewCluster(hosts...)
	session.cluster.Keyspace = keyspace
	session.cluster.Consistency = gocql.Quorum
	session.cluster.SerialConsistency = gocql.Serial
	session.cluster.Timeout = 3 * time.Second
	session.cluster.ProtoVersion = cqlVersion
	return session
}

type GocqlSession struct {
	*gocql.Session
	cluster *gocql.ClusterConfig
}

func (s *GocqlSession) Connect() error {
	session, err := s.cluster.CreateSession()
	if err != nil {
		return err
	}
	s.Session = session
	return nil
}

func (s *GocqlSession) IsValid() bool {
	return s.Session != nil
}

func (s *GocqlSession) Close() {
	if s.Session != nil {
		s.Session.Close()
	}
}
