package stake

// Constants of the penalty schedule.
const (
	// LatePenaltyGraceDays is the number of days after the committed term
	// during which unstaking stays penalty free.
	LatePenaltyGraceDays uint64 = 14

	// LatePenaltyScaleDays is the number of late days over which the late
	// penalty ramps linearly up to the whole stake return.
	LatePenaltyScaleDays int64 = 700

	// EarlyPenaltyMinDays is the floor of the early-unstake penalty window.
	EarlyPenaltyMinDays uint64 = 90
)
