package draw

import (
	"time"
)

// Algorithm tags. The tag is part of every published proof so that old proofs
// stay verifiable under the exact rule they were generated with.
const (
	// AlgorithmSHA256Mod32 is the standard commitment scheme: SHA-256 over the
	// canonical seed string, winner index taken from the first 32 bits of the
	// digest modulo the participant count. The truncated-modulo reduction has a
	// small bias for counts that are not powers of two; that bias is part of
	// the versioned scheme and must not be changed under this tag.
	AlgorithmSHA256Mod32 = "SHA256_MOD32_V1"

	// AlgorithmSingleParticipant tags draws decided without randomness because
	// only one entry existed.
	AlgorithmSingleParticipant = "SINGLE_PARTICIPANT"

	// SentinelNotApplicable is the seed/hash placeholder for draws that used no
	// randomness. No commitment exists for them and none should be implied.
	SentinelNotApplicable = "N/A"
)

// Entry is the per-participant material that feeds the seed
type Entry struct {
	// ParticipantID is the entry's unique id within the sweepstake
	ParticipantID string

	// UserID is the owner of the entry
	UserID string

	// JoinedAt is when the entry was created; immutable once written
	JoinedAt time.Time
}

// Seed is the deterministic input material for one draw commitment
type Seed struct {
	// SweepstakeID identifies the sweepstake the seed belongs to
	SweepstakeID string

	// Entries holds the participant material sorted by ParticipantID. The same
	// slice must be used to select the winner; re-sorting elsewhere could
	// reorder ties.
	Entries []Entry

	// TimeBucket is the wall clock at generation time truncated down to
	// BucketSizeMillis, in epoch milliseconds
	TimeBucket int64

	// Value is the canonical seed string that gets hashed
	Value string
}

// Proof is the standalone verification document published for a draw. It
// contains everything a third party needs to recompute the winner without
// further database access.
type Proof struct {
	SweepstakeID     string    `json:"sweepstake_id"`
	ParticipantCount int       `json:"participant_count"`
	ParticipantIDs   []string  `json:"participant_ids"`
	Seed             string    `json:"seed"`
	Hash             string    `json:"hash"`
	WinnerIndex      int       `json:"winner_index"`
	TimeBucket       int64     `json:"time_bucket"`
	Algorithm        string    `json:"algorithm"`
	GeneratedAt      time.Time `json:"generated_at"`
}

// Result is the full output of one draw execution. Immutable once created.
type Result struct {
	// SweepstakeID identifies the sweepstake that was drawn
	SweepstakeID string

	// WinnerParticipantID is the selected entry
	WinnerParticipantID string

	// WinnerIndex is the position of the winner in the sorted entry list
	WinnerIndex int

	// Algorithm names the commitment scheme that selected the winner
	Algorithm string

	// Seed is the canonical seed string, or SentinelNotApplicable
	Seed string

	// Hash is the lower-case hex SHA-256 of the seed, or SentinelNotApplicable
	Hash string

	// TimeBucket is the bucket embedded in the seed, in epoch milliseconds
	TimeBucket int64

	// Participants is the sorted entry snapshot the draw selected from
	Participants []Entry

	// Proof is the publishable verification document
	Proof *Proof

	// GeneratedAt is when the draw executed
	GeneratedAt time.Time
}

// Report is a publishable audit report: a result plus the outcome of an
// independent re-verification and the steps an external auditor can follow.
type Report struct {
	SweepstakeID        string    `json:"sweepstake_id"`
	Verified            bool      `json:"verified"`
	Algorithm           string    `json:"algorithm"`
	Seed                string    `json:"seed"`
	Hash                string    `json:"hash"`
	WinnerParticipantID string    `json:"winner_participant_id"`
	WinnerIndex         int       `json:"winner_index"`
	Proof               *Proof    `json:"proof"`
	Steps               []string  `json:"verification_steps"`
	GeneratedAt         time.Time `json:"generated_at"`
}
