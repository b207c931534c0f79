package ast

// SubmitJob launches a background maintenance job (COMPACT, FLUSH, STATS,
// REBUILD INDEX, etc.) over the current space.
type SubmitJob struct {
	JobType string
	Args    []string
}

func (s *SubmitJob) Kind() Kind       { return KindSubmitJob }
func (s *SubmitJob) Accept(v Visitor) { v.Visit(s) }
func (s *SubmitJob) String() string   { return "SUBMIT JOB " + s.JobType }

// ShowJobs lists background jobs submitted in the current space.
type ShowJobs struct{}

func (s *ShowJobs) Kind() Kind       { return KindShowJobs }
func (s *ShowJobs) Accept(v Visitor) { v.Visit(s) }
func (s *ShowJobs) String() string   { return "SHOW JOBS" }

// StopJob cancels a running background job by ID.
type StopJob struct{ JobID int64 }

func (s *StopJob) Kind() Kind       { return KindStopJob }
func (s *StopJob) Accept(v Visitor) { v.Visit(s) }
func (s *StopJob) String() string   { return "STOP JOB" }

// RecoverJob restarts a stopped or failed background job by ID.
type RecoverJob struct{ JobID int64 }

func (s *RecoverJob) Kind() Kind       { return KindRecoverJob }
func (s *RecoverJob) Accept(v Visitor) { v.Visit(s) }
func (s *RecoverJob) String() string   { return "RECOVER JOB" }
