package plan

// BalanceDiskAttach registers storage hosts and rebalances partitions onto
// them, ADD HOSTS' physical operator.
type BalanceDiskAttach struct {
	leaf
	Hosts []string
}

func NewBalanceDiskAttach(hosts []string) *BalanceDiskAttach {
	return &BalanceDiskAttach{leaf: newLeaf([]string{"New Job Id"}), Hosts: hosts}
}
func (n *BalanceDiskAttach) Kind() Kind     { return KindBalanceDiskAttach }
func (n *BalanceDiskAttach) String() string { return "BalanceDiskAttach" }

// BalanceDiskRemove drains and removes storage hosts from the cluster,
// DROP HOSTS' physical operator.
type BalanceDiskRemove struct {
	leaf
	Hosts []string
}

func NewBalanceDiskRemove(hosts []string) *BalanceDiskRemove {
	return &BalanceDiskRemove{leaf: newLeaf([]string{"New Job Id"}), Hosts: hosts}
}
func (n *BalanceDiskRemove) Kind() Kind     { return KindBalanceDiskRemove }
func (n *BalanceDiskRemove) String() string { return "BalanceDiskRemove" }

// SubmitJob launches a background maintenance job.
type SubmitJob struct {
	leaf
	JobType string
	Args    []string
}

func NewSubmitJob(jobType string, args []string) *SubmitJob {
	return &SubmitJob{leaf: newLeaf([]string{"New Job Id"}), JobType: jobType, Args: args}
}
func (n *SubmitJob) Kind() Kind     { return KindSubmitJob }
func (n *SubmitJob) String() string { return "SubmitJob " + n.JobType }

// ShowJobs lists background jobs.
type ShowJobs struct{ leaf }

func NewShowJobs() *ShowJobs {
	return &ShowJobs{newLeaf([]string{"Job Id", "Command", "Status", "Start Time", "Stop Time"})}
}
func (n *ShowJobs) Kind() Kind     { return KindShowJobs }
func (n *ShowJobs) String() string { return "ShowJobs" }

// StopJob cancels a running background job.
type StopJob struct {
	leaf
	JobID int64
}

func NewStopJob(id int64) *StopJob { return &StopJob{leaf: newLeaf([]string{"Result"}), JobID: id} }
func (n *StopJob) Kind() Kind     { return KindStopJob }
func (n *StopJob) String() string { return "StopJob" }

// RecoverJob resumes a failed background job.
type RecoverJob struct {
	leaf
	JobID int64
}

func NewRecoverJob(id int64) *RecoverJob {
	return &RecoverJob{leaf: newLeaf([]string{"Recovered job num"}), JobID: id}
}
func (n *RecoverJob) Kind() Kind     { return KindRecoverJob }
func (n *RecoverJob) String() string { return "RecoverJob" }

// Download stages an external SST/HDFS data source for ingest.
type Download struct {
	leaf
	URL string
}

func NewDownload(url string) *Download { return &Download{leaf: newLeaf(nil), URL: url} }
func (n *Download) Kind() Kind     { return KindDownload }
func (n *Download) String() string { return "Download" }

// Ingest bulk-loads a previously downloaded data source into the space.
type Ingest struct{ leaf }

func NewIngest() *Ingest { return &Ingest{newLeaf(nil)} }
func (n *Ingest) Kind() Kind     { return KindIngest }
func (n *Ingest) String() string { return "Ingest" }

// KillQuery aborts one in-flight query.
type KillQuery struct {
	leaf
	SessionID, QueryID int64
}

func NewKillQuery(sessionID, queryID int64) *KillQuery {
	return &KillQuery{leaf: newLeaf(nil), SessionID: sessionID, QueryID: queryID}
}
func (n *KillQuery) Kind() Kind     { return KindKillQuery }
func (n *KillQuery) String() string { return "KillQuery" }

// KillSession terminates a client session.
type KillSession struct {
	leaf
	SessionID int64
}

func NewKillSession(id int64) *KillSession { return &KillSession{leaf: newLeaf(nil), SessionID: id} }
func (n *KillSession) Kind() Kind     { return KindKillSession }
func (n *KillSession) String() string { return "KillSession" }

// ShowQueries lists in-flight queries.
type ShowQueries struct {
	leaf
	Local bool
}

func NewShowQueries(local bool) *ShowQueries {
	return &ShowQueries{leaf: newLeaf([]string{"SessionID", "ExecutionPlanID", "User", "Host", "StartTime", "DurationInUSec", "Query"}), Local: local}
}
func (n *ShowQueries) Kind() Kind     { return KindShowQueries }
func (n *ShowQueries) String() string { return "ShowQueries" }

// ShowSessions lists connected client sessions.
type ShowSessions struct {
	leaf
	Local bool
}

func NewShowSessions(local bool) *ShowSessions {
	return &ShowSessions{leaf: newLeaf([]string{"SessionId", "UserName", "SpaceName", "CreateTime", "UpdateTime", "GraphAddr", "ClientIp"}), Local: local}
}
func (n *ShowSessions) Kind() Kind     { return KindShowSessions }
func (n *ShowSessions) String() string { return "ShowSessions" }

// CreateSnapshot takes a point-in-time cluster snapshot.
type CreateSnapshot struct{ leaf }

func NewCreateSnapshot() *CreateSnapshot { return &CreateSnapshot{newLeaf(nil)} }
func (n *CreateSnapshot) Kind() Kind     { return KindCreateSnapshot }
func (n *CreateSnapshot) String() string { return "CreateSnapshot" }

// DropSnapshot removes a named snapshot.
type DropSnapshot struct {
	leaf
	Name string
}

func NewDropSnapshot(name string) *DropSnapshot { return &DropSnapshot{leaf: newLeaf(nil), Name: name} }
func (n *DropSnapshot) Kind() Kind     { return KindDropSnapshot }
func (n *DropSnapshot) String() string { return "DropSnapshot " + n.Name }

// ShowSnapshots lists every snapshot.
type ShowSnapshots struct{ leaf }

func NewShowSnapshots() *ShowSnapshots {
	return &ShowSnapshots{newLeaf([]string{"Name", "Status", "Hosts"})}
}
func (n *ShowSnapshots) Kind() Kind     { return KindShowSnapshots }
func (n *ShowSnapshots) String() string { return "ShowSnapshots" }

// ShowHosts lists cluster hosts and their status.
type ShowHosts struct{ leaf }

func NewShowHosts() *ShowHosts {
	return &ShowHosts{newLeaf([]string{"Host", "Port", "Status", "Leader count", "Leader distribution", "Partition distribution"})}
}
func (n *ShowHosts) Kind() Kind     { return KindShowHosts }
func (n *ShowHosts) String() string { return "ShowHosts" }

// ShowConfigs lists mutable runtime configuration parameters.
type ShowConfigs struct {
	leaf
	Module string
}

func NewShowConfigs(module string) *ShowConfigs {
	return &ShowConfigs{leaf: newLeaf([]string{"module", "name", "type", "mode", "value"}), Module: module}
}
func (n *ShowConfigs) Kind() Kind     { return KindShowConfigs }
func (n *ShowConfigs) String() string { return "ShowConfigs" }

// SetConfig updates one runtime configuration parameter.
type SetConfig struct {
	leaf
	Name, Value string
}

func NewSetConfig(name, value string) *SetConfig {
	return &SetConfig{leaf: newLeaf(nil), Name: name, Value: value}
}
func (n *SetConfig) Kind() Kind     { return KindSetConfig }
func (n *SetConfig) String() string { return "SetConfig " + n.Name }
