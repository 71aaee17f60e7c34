package model

import "github.com/m-mizutani/chronocode/pkg/domain/types"

type AnalysisStep string

const (
	AnalysisIdle      AnalysisStep = "idle"
	AnalysisPreparing AnalysisStep = "preparing"
	AnalysisAnalyzing AnalysisStep = "analyzing"
	AnalysisReady     AnalysisStep = "ready"
)

// AnalysisProgressSteps are the steps shown in the progress view, in order.
var AnalysisProgressSteps = []AnalysisStep{
	AnalysisPreparing,
	AnalysisAnalyzing,
	AnalysisReady,
}

func (x AnalysisStep) Label() string {
	switch x {
	case AnalysisPreparing:
		return "Preparing repository..."
	case AnalysisAnalyzing:
		return "Analyzing commits with AI..."
	case AnalysisReady:
		return "Timeline ready"
	default:
		return "Idle"
	}
}

type StepStatus string

const (
	StepDone    StepStatus = "done"
	StepActive  StepStatus = "active"
	StepPending StepStatus = "pending"
)

func stepIndex(step AnalysisStep) int {
	for i, s := range AnalysisProgressSteps {
		if s == step {
			return i
		}
	}
	return -1
}

// StepProgress reports how step should be displayed while the machine is at current.
func StepProgress(step, current AnalysisStep) StepStatus {
	stepIdx, currentIdx := stepIndex(step), stepIndex(current)
	switch {
	case stepIdx < currentIdx:
		return StepDone
	case stepIdx == currentIdx:
		return StepActive
	default:
		return StepPending
	}
}

// AnalysisState is a snapshot of one analysis session.
type AnalysisState struct {
	Step        AnalysisStep `json:"step"`
	IsAnalyzing bool         `json:"isAnalyzing"`
	RepoURL     string       `json:"repoUrl,omitempty"`
	RepoID      types.RepoID `json:"repoId,omitempty"`
	// Error is empty unless the last analyze request failed.
	Error string `json:"error,omitempty"`
}

type SessionState string

const (
	SessionChecking        SessionState = "checking"
	SessionAuthenticated   SessionState = "authenticated"
	SessionUnauthenticated SessionState = "unauthenticated"
)
