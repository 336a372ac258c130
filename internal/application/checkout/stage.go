package checkout

// Stage es la etapa del flujo de checkout. El flujo avanza
// Validating → Pricing → Persisting → Clearing y termina en Completed o
// Rejected; cada transición queda en el log estructurado.
type Stage string

const (
	StageIdle       Stage = "IDLE"
	StageValidating Stage = "VALIDATING"
	StagePricing    Stage = "PRICING"
	StagePersisting Stage = "PERSISTING"
	StageClearing   Stage = "CLEARING"
	StageCompleted  Stage = "COMPLETED"
	StageRejected   Stage = "REJECTED"
)

// IsTerminal indica si la etapa es final.
func (s Stage) IsTerminal() bool {
	return s == StageCompleted || s == StageRejected
}

// String representation (for logging)
func (s Stage) String() string {
	return string(s)
}
