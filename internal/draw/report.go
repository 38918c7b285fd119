package draw

import (
	"time"
)

// verificationSteps describes, in prose, the checks Verify performs. The
// report documents them for external auditors; it does not compute them.
var verificationSteps = []string{
	"1. Sort the published participant entries by participant id and rebuild the canonical seed string using the published time bucket.",
	"2. Compare the rebuilt seed byte-for-byte against the published seed.",
	"3. Compute the SHA-256 digest of the rebuilt seed and compare it against the published hash.",
	"4. Parse the first 8 hex characters of the digest as a 32-bit unsigned integer, reduce it modulo the participant count, and confirm it equals the published winner index and selects the published winner.",
}

// NewReport formats a draw result plus its verification outcome into a
// publishable audit report. Read-only and repeatable; safe to call any number
// of times on a finished sweepstake.
func NewReport(result *Result, sweepstakeID string, now time.Time) *Report {
	steps := make([]string, len(verificationSteps))
	copy(steps, verificationSteps)

	return &Report{
		SweepstakeID:        sweepstakeID,
		Verified:            Verify(result, sweepstakeID),
		Algorithm:           result.Algorithm,
		Seed:                result.Seed,
		Hash:                result.Hash,
		WinnerParticipantID: result.WinnerParticipantID,
		WinnerIndex:         result.WinnerIndex,
		Proof:               result.Proof,
		Steps:               steps,
		GeneratedAt:         now,
	}
}
