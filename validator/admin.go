package validator

import (
	"github.com/graphlang/ngqlcore/ast"
	"github.com/graphlang/ngqlcore/auth"
	"github.com/graphlang/ngqlcore/plan"
	"github.com/graphlang/ngqlcore/value"
)

// validateAdmin covers the cluster-wide admin sentences that need neither a
// space binding nor anything beyond read/manage preconditions: host/config/
// snapshot inspection and mutation.
func (v *Validator) validateAdmin(s ast.Sentence) (plan.PlanNode, value.ColumnSchema, error) {
	switch s := s.(type) {
	case *ast.AddHosts:
		if err := v.checkPerm(auth.PrecondUserManage, "ADD HOSTS"); err != nil {
			return nil, nil, err
		}
		n := plan.NewBalanceDiskAttach(s.Hosts)
		return n, columnSchemaOf(n.ColNames()), nil

	case *ast.DropHosts:
		if err := v.checkPerm(auth.PrecondUserManage, "DROP HOSTS"); err != nil {
			return nil, nil, err
		}
		n := plan.NewBalanceDiskRemove(s.Hosts)
		return n, columnSchemaOf(n.ColNames()), nil

	case *ast.ShowHosts:
		if err := v.checkPerm(auth.PrecondRead, "SHOW HOSTS"); err != nil {
			return nil, nil, err
		}
		n := plan.NewShowHosts()
		return n, columnSchemaOf(n.ColNames()), nil

	case *ast.ShowConfigs:
		if err := v.checkPerm(auth.PrecondRead, "SHOW CONFIGS"); err != nil {
			return nil, nil, err
		}
		n := plan.NewShowConfigs(s.Module)
		return n, columnSchemaOf(n.ColNames()), nil

	case *ast.SetConfig:
		if err := v.checkPerm(auth.PrecondUserManage, "UPDATE CONFIGS"); err != nil {
			return nil, nil, err
		}
		return plan.NewSetConfig(s.Name, s.Value), nil, nil

	case *ast.CreateSnapshot:
		if err := v.checkPerm(auth.PrecondUserManage, "CREATE SNAPSHOT"); err != nil {
			return nil, nil, err
		}
		return plan.NewCreateSnapshot(), nil, nil

	case *ast.DropSnapshot:
		if err := v.checkPerm(auth.PrecondUserManage, "DROP SNAPSHOT"); err != nil {
			return nil, nil, err
		}
		return plan.NewDropSnapshot(s.Name), nil, nil

	case *ast.ShowSnapshots:
		if err := v.checkPerm(auth.PrecondRead, "SHOW SNAPSHOTS"); err != nil {
			return nil, nil, err
		}
		n := plan.NewShowSnapshots()
		return n, columnSchemaOf(n.ColNames()), nil

	default:
		return nil, nil, ErrUnknownSentence.New(s)
	}
}

// validateSession covers the session/query management sentences, which
// require the caller to at least be an authenticated ADMIN to see or kill
// state that isn't their own (Local restricts the view to the caller's
// session without that extra check).
func (v *Validator) validateSession(s ast.Sentence) (plan.PlanNode, value.ColumnSchema, error) {
	switch s := s.(type) {
	case *ast.ShowSessions:
		if !s.Local {
			if err := v.checkPerm(auth.PrecondSchemaWrite, "SHOW SESSIONS"); err != nil {
				return nil, nil, err
			}
		}
		n := plan.NewShowSessions(s.Local)
		return n, columnSchemaOf(n.ColNames()), nil

	case *ast.KillSession:
		if err := v.checkPerm(auth.PrecondSchemaWrite, "KILL SESSION"); err != nil {
			return nil, nil, err
		}
		return plan.NewKillSession(s.SessionID), nil, nil

	case *ast.ShowQueries:
		if !s.Local {
			if err := v.checkPerm(auth.PrecondSchemaWrite, "SHOW QUERIES"); err != nil {
				return nil, nil, err
			}
		}
		n := plan.NewShowQueries(s.Local)
		return n, columnSchemaOf(n.ColNames()), nil

	case *ast.KillQuery:
		if err := v.checkPerm(auth.PrecondSchemaWrite, "KILL QUERY"); err != nil {
			return nil, nil, err
		}
		return plan.NewKillQuery(s.SessionID, s.QueryID), nil, nil

	default:
		return nil, nil, ErrUnknownSentence.New(s)
	}
}

func (v *Validator) validateSubmitJob(s *ast.SubmitJob) (plan.PlanNode, value.ColumnSchema, error) {
	if err := v.requireSpace(); err != nil {
		return nil, nil, err
	}
	if err := v.checkPerm(auth.PrecondSchemaWrite, "SUBMIT JOB"); err != nil {
		return nil, nil, err
	}
	n := plan.NewSubmitJob(s.JobType, s.Args)
	return n, columnSchemaOf(n.ColNames()), nil
}

func (v *Validator) validateShowJobs(s *ast.ShowJobs) (plan.PlanNode, value.ColumnSchema, error) {
	if err := v.requireSpace(); err != nil {
		return nil, nil, err
	}
	if err := v.checkPerm(auth.PrecondRead, "SHOW JOBS"); err != nil {
		return nil, nil, err
	}
	n := plan.NewShowJobs()
	return n, columnSchemaOf(n.ColNames()), nil
}

func (v *Validator) validateStopJob(s *ast.StopJob) (plan.PlanNode, value.ColumnSchema, error) {
	if err := v.requireSpace(); err != nil {
		return nil, nil, err
	}
	if err := v.checkPerm(auth.PrecondSchemaWrite, "STOP JOB"); err != nil {
		return nil, nil, err
	}
	n := plan.NewStopJob(s.JobID)
	return n, columnSchemaOf(n.ColNames()), nil
}

func (v *Validator) validateRecoverJob(s *ast.RecoverJob) (plan.PlanNode, value.ColumnSchema, error) {
	if err := v.requireSpace(); err != nil {
		return nil, nil, err
	}
	if err := v.checkPerm(auth.PrecondSchemaWrite, "RECOVER JOB"); err != nil {
		return nil, nil, err
	}
	n := plan.NewRecoverJob(s.JobID)
	return n, columnSchemaOf(n.ColNames()), nil
}
