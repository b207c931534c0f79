package ast

// ShowHosts lists cluster storage/meta/graph hosts and their status.
type ShowHosts struct{}

func (s *ShowHosts) Kind() Kind       { return KindShowHosts }
func (s *ShowHosts) Accept(v Visitor) { v.Visit(s) }
func (s *ShowHosts) String() string   { return "SHOW HOSTS" }

// ShowConfigs lists mutable runtime configuration parameters.
type ShowConfigs struct{ Module string } // empty means all modules

func (s *ShowConfigs) Kind() Kind       { return KindShowConfigs }
func (s *ShowConfigs) Accept(v Visitor) { v.Visit(s) }
func (s *ShowConfigs) String() string   { return "SHOW CONFIGS" }

// SetConfig is `UPDATE CONFIGS name = value`.
type SetConfig struct {
	Name  string
	Value string
}

func (s *SetConfig) Kind() Kind       { return KindSetConfig }
func (s *SetConfig) Accept(v Visitor) { v.Visit(s) }
func (s *SetConfig) String() string   { return "UPDATE CONFIGS " + s.Name }

// CreateSnapshot takes a point-in-time cluster snapshot.
type CreateSnapshot struct{}

func (s *CreateSnapshot) Kind() Kind       { return KindCreateSnapshot }
func (s *CreateSnapshot) Accept(v Visitor) { v.Visit(s) }
func (s *CreateSnapshot) String() string   { return "CREATE SNAPSHOT" }

// DropSnapshot removes a named snapshot.
type DropSnapshot struct{ Name string }

func (s *DropSnapshot) Kind() Kind       { return KindDropSnapshot }
func (s *DropSnapshot) Accept(v Visitor) { v.Visit(s) }
func (s *DropSnapshot) String() string   { return "DROP SNAPSHOT " + s.Name }

// ShowSnapshots lists every snapshot.
type ShowSnapshots struct{}

func (s *ShowSnapshots) Kind() Kind       { return KindShowSnapshots }
func (s *ShowSnapshots) Accept(v Visitor) { v.Visit(s) }
func (s *ShowSnapshots) String() string   { return "SHOW SNAPSHOTS" }

// ShowSessions lists every connected client session.
type ShowSessions struct{ Local bool }

func (s *ShowSessions) Kind() Kind       { return KindShowSessions }
func (s *ShowSessions) Accept(v Visitor) { v.Visit(s) }
func (s *ShowSessions) String() string   { return "SHOW SESSIONS" }

// KillSession terminates a client session by ID.
type KillSession struct{ SessionID int64 }

func (s *KillSession) Kind() Kind       { return KindKillSession }
func (s *KillSession) Accept(v Visitor) { v.Visit(s) }
func (s *KillSession) String() string   { return "KILL SESSION" }

// ShowQueries lists in-flight queries, optionally restricted to the caller's
// own session.
type ShowQueries struct{ Local bool }

func (s *ShowQueries) Kind() Kind       { return KindShowQueries }
func (s *ShowQueries) Accept(v Visitor) { v.Visit(s) }
func (s *ShowQueries) String() string   { return "SHOW QUERIES" }

// KillQuery aborts one in-flight query identified by session+query ID.
type KillQuery struct {
	SessionID int64
	QueryID   int64
}

func (s *KillQuery) Kind() Kind       { return KindKillQuery }
func (s *KillQuery) Accept(v Visitor) { v.Visit(s) }
func (s *KillQuery) String() string   { return "KILL QUERY" }

// AddHosts registers storage hosts with the cluster.
type AddHosts struct{ Hosts []string }

func (s *AddHosts) Kind() Kind       { return KindAddHosts }
func (s *AddHosts) Accept(v Visitor) { v.Visit(s) }
func (s *AddHosts) String() string   { return "ADD HOSTS ..." }

// DropHosts removes empty storage hosts from the cluster.
type DropHosts struct{ Hosts []string }

func (s *DropHosts) Kind() Kind       { return KindDropHosts }
func (s *DropHosts) Accept(v Visitor) { v.Visit(s) }
func (s *DropHosts) String() string   { return "DROP HOSTS ..." }
