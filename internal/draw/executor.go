package draw

import (
	"time"
)

// Execute runs one full draw: builds the seed, hashes it, reduces the hash to
// a winner index and emits a result with a self-contained proof. It is a pure
// function of its inputs plus the supplied clock reading; persistence is the
// caller's responsibility.
func Execute(sweepstakeID string, entries []Entry, now time.Time) (*Result, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyParticipantSet
	}

	// One entry needs no randomness and none should be implied.
	if len(entries) == 1 {
		return singleParticipantResult(sweepstakeID, entries[0], now), nil
	}

	seed, err := BuildSeed(sweepstakeID, entries, now)
	if err != nil {
		return nil, err
	}

	hash := HashSeed(seed.Value)

	index, err := ReduceToIndex(hash, len(seed.Entries))
	if err != nil {
		return nil, err
	}

	// The winner comes from the seed's own sorted slice. Sorting again here
	// could reorder ties and select a different entry than the one committed.
	winner := seed.Entries[index]

	return &Result{
		SweepstakeID:        sweepstakeID,
		WinnerParticipantID: winner.ParticipantID,
		WinnerIndex:         index,
		Algorithm:           AlgorithmSHA256Mod32,
		Seed:                seed.Value,
		Hash:                hash,
		TimeBucket:          seed.TimeBucket,
		Participants:        seed.Entries,
		Proof: &Proof{
			SweepstakeID:     sweepstakeID,
			ParticipantCount: len(seed.Entries),
			ParticipantIDs:   participantIDs(seed.Entries),
			Seed:             seed.Value,
			Hash:             hash,
			WinnerIndex:      index,
			TimeBucket:       seed.TimeBucket,
			Algorithm:        AlgorithmSHA256Mod32,
			GeneratedAt:      now,
		},
		GeneratedAt: now,
	}, nil
}

// singleParticipantResult builds the shortcut result for a one-entry draw.
func singleParticipantResult(sweepstakeID string, entry Entry, now time.Time) *Result {
	entries := []Entry{entry}

	return &Result{
		SweepstakeID:        sweepstakeID,
		WinnerParticipantID: entry.ParticipantID,
		WinnerIndex:         0,
		Algorithm:           AlgorithmSingleParticipant,
		Seed:                SentinelNotApplicable,
		Hash:                SentinelNotApplicable,
		TimeBucket:          0,
		Participants:        entries,
		Proof: &Proof{
			SweepstakeID:     sweepstakeID,
			ParticipantCount: 1,
			ParticipantIDs:   []string{entry.ParticipantID},
			Seed:             SentinelNotApplicable,
			Hash:             SentinelNotApplicable,
			WinnerIndex:      0,
			TimeBucket:       0,
			Algorithm:        AlgorithmSingleParticipant,
			GeneratedAt:      now,
		},
		GeneratedAt: now,
	}
}

// participantIDs extracts the id list for the proof document. The entries are
// already in seed order, so the proof lists ids in the order the winner index
// selects from.
func participantIDs(entries []Entry) []string {
	ids := make([]string, len(entries))
	for i, entry := range entries {
		ids[i] = entry.ParticipantID
	}
	return ids
}
