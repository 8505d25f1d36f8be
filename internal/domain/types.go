// Package domain holds the immutable value types shared across the
// permission-gate pipeline. Every subsystem output is a tagged record:
// string-valued enums carried as distinct Go types, never bare strings,
// so a mismatched stage shows up as a compile error instead of a typo.
package domain

// StabilityClass is the UBE classification of a step vector.
type StabilityClass string

const (
	StabilitySafe    StabilityClass = "SAFE"
	StabilityCaution StabilityClass = "CAUTION"
	StabilityUnsafe  StabilityClass = "UNSAFE"
)

// Permission is the Aegixa gate decision.
type Permission string

const (
	PermissionAllow  Permission = "ALLOW"
	PermissionAssist Permission = "ASSIST"
	PermissionBlock  Permission = "BLOCK"
)

// Readiness is the NeuroPause temporal classification.
type Readiness string

const (
	ReadinessReady    Readiness = "READY"
	ReadinessNotReady Readiness = "NOT_READY"
)

// FailureClass is the NRRP severity of a run's outcome; LOW is also
// assigned to ALLOW/ASSIST runs with no stop, which execute.
type FailureClass string

const (
	FailureLow    FailureClass = "LOW"
	FailureMedium FailureClass = "MEDIUM"
	FailureHigh   FailureClass = "HIGH"
)

// ExecutionFinalState is the Execution Sink terminal state.
type ExecutionFinalState string

const (
	FinalExecuted   ExecutionFinalState = "EXECUTED"
	FinalBlocked    ExecutionFinalState = "BLOCKED"
	FinalStopped    ExecutionFinalState = "STOPPED"
	FinalTerminated ExecutionFinalState = "TERMINATED"
)

// SectorLabel is the domain tag carried through a scenario.
type SectorLabel string

const (
	SectorEnergy            SectorLabel = "ENERGY"
	SectorAerospaceDefense  SectorLabel = "AEROSPACE_DEFENSE"
	SectorMobility          SectorLabel = "MOBILITY"
	SectorRobotics          SectorLabel = "ROBOTICS"
)

// ExecutionRequest is one proposed irreversible action within a scenario.
type ExecutionRequest struct {
	ExecutionID    string      `json:"execution_id"`
	ActionType     string      `json:"action_type"`
	SectorLabel    SectorLabel `json:"sector_label"`
	RequestedAtMs  int64       `json:"requested_at_ms"`
}

// TemporalSignal is one step of the NeuroPause input stream.
type TemporalSignal struct {
	StepIndex int  `json:"step_index"`
	StableMs  int  `json:"stable_ms"`
	Jitter    bool `json:"jitter"`
}

// UBEStepVector is one step of the UBE input stream.
type UBEStepVector struct {
	StepIndex        int     `json:"step_index"`
	Phi              float64 `json:"phi"`
	DegradationRate  float64 `json:"degradation_rate"`
	RiskLoad         float64 `json:"risk_load"`
}

// Scenario is the validated, immutable input to a run.
type Scenario struct {
	ScenarioID  string             `json:"scenario_id"`
	SectorLabel SectorLabel        `json:"sector_label"`
	Requests    []ExecutionRequest `json:"requests"`
	Temporal    []TemporalSignal   `json:"temporal"`
	UBEVectors  []UBEStepVector    `json:"ube_vectors"`
}

// NeuroPauseOut is the temporal-readiness output.
type NeuroPauseOut struct {
	Readiness      Readiness `json:"readiness"`
	TauMsRequired  int       `json:"tau_ms_required"`
	TauMsObserved  int       `json:"tau_ms_observed"`
	Resets         int       `json:"resets"`
}

// UBEOut is the stability-classifier output for a single step vector.
type UBEOut struct {
	Phi                float64        `json:"phi"`
	DegradationRate    float64        `json:"degradation_rate"`
	RiskLoad           float64        `json:"risk_load"`
	StabilityClass     StabilityClass `json:"stability_class"`
	InvariantViolation bool           `json:"invariant_violation"`
}

// AegixaOut is the permission-gate output, shared by precheck and
// mid-execution monitor.
type AegixaOut struct {
	Permission      Permission `json:"permission"`
	StopIssued      bool       `json:"stop_issued"`
	StopReasonCode  *string    `json:"stop_reason_code,omitempty"`
	StopStepIndex   *int       `json:"stop_step_index,omitempty"`
}

// NRRPOut is the retry/terminal decision output.
type NRRPOut struct {
	RetriesAttempted int          `json:"retries_attempted"`
	RetryAllowed     bool         `json:"retry_allowed"`
	TerminalStop     bool         `json:"terminal_stop"`
	FailureClass     FailureClass `json:"failure_class"`
}

// ExecutionSinkOut is the execution-sink output.
type ExecutionSinkOut struct {
	Executed            bool                `json:"executed"`
	FinalState          ExecutionFinalState `json:"final_state"`
	ReasonCode          string              `json:"reason_code"`
	ExecutionEffectHash string              `json:"execution_effect_hash"`
}

// Profile is the set of frozen numeric thresholds consumed by the
// stability classifier and retry/terminal layer.
type Profile struct {
	MaxRetries          int     `json:"max_retries"`
	PhiMinSafe          float64 `json:"phi_min_safe"`
	RiskLoadMaxSafe     float64 `json:"risk_load_max_safe"`
	DegradationMaxSafe  float64 `json:"degradation_max_safe"`
}

// RBlockPayload is the hashed portion of an R-Block: everything except
// previous_hash and rblock_hash, which are appended after chained_hash
// is computed over this value.
type RBlockPayload struct {
	RBlockID    string           `json:"rblock_id"`
	RunID       string           `json:"run_id"`
	ScenarioID  string           `json:"scenario_id"`
	StepCount   int              `json:"step_count"`
	NeuroPause  NeuroPauseOut    `json:"neuropause"`
	UBEInitial  UBEOut           `json:"ube_initial"`
	Aegixa      AegixaOut        `json:"aegixa"`
	NRRP        NRRPOut          `json:"nrrp"`
	Execution   ExecutionSinkOut `json:"execution"`
}

// RBlock is the fully hashed, persisted ledger entry.
type RBlock struct {
	RBlockPayload
	PreviousHash string `json:"previous_hash"`
	RBlockHash   string `json:"rblock_hash"`
}

// RunResult is the in-memory and JSON-serialized outcome of a run.
type RunResult struct {
	RunID        string              `json:"run_id"`
	ScenarioID   string              `json:"scenario_id"`
	SectorLabel  SectorLabel         `json:"sector_label"`
	Permission   Permission          `json:"permission"`
	StopIssued   bool                `json:"stop_issued"`
	TerminalStop bool                `json:"terminal_stop"`
	FinalState   ExecutionFinalState `json:"final_state"`
	RBlockHash   string              `json:"rblock_hash"`
	LedgerDir    string              `json:"ledger_dir"`
}

// VerifyResult is the chain-verifier output.
type VerifyResult struct {
	OK        bool   `json:"ok"`
	Reason    string `json:"reason,omitempty"`
	FinalHash string `json:"final_hash,omitempty"`
	Count     int    `json:"count,omitempty"`
}

// GenesisHash is the previous_hash of the first block in a chain: 64
// ASCII zeros.
const GenesisHash = "0000000000000000000000000000000000000000000000000000000000000000"

// Namespace is the fixed UUID namespace run_id and rblock_id are
// derived from.
const Namespace = "12345678-1234-5678-1234-567812345678"

// TauMsRequired is the cumulative unjittered stability window NeuroPause
// requires before declaring readiness.
const TauMsRequired = 330
