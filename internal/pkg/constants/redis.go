package constants

// Redis key formats
const (
	// Flow Session Orchestrator
	KeyFlowToken = "flow:token:%s" // Format: flow:token:{token}

	// Text-based registration fallback
	KeyTextRegistration = "registration:session:%s" // Format: registration:session:{phone}
)
