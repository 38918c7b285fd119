package draw

// Verify independently recomputes every step of a published result and
// confirms it: the seed from the persisted participant snapshot and time
// bucket, the hash from the recomputed seed, the winner index from the
// recomputed hash, and the winner id at that index. Any single mismatch fails
// the whole verification.
//
// A false return is an expected outcome, not an error: it means the result
// does not match its own inputs, whether through tampering or corruption.
func Verify(result *Result, sweepstakeID string) bool {
	if result == nil || len(result.Participants) == 0 {
		return false
	}

	if result.Algorithm == AlgorithmSingleParticipant {
		return len(result.Participants) == 1 &&
			result.WinnerIndex == 0 &&
			result.WinnerParticipantID == result.Participants[0].ParticipantID
	}

	// Recompute the seed with the bucket that was persisted at generation
	// time, never with a fresh clock reading.
	seed, err := BuildSeedAt(sweepstakeID, result.Participants, result.TimeBucket)
	if err != nil || seed.Value != result.Seed {
		return false
	}

	hash := HashSeed(seed.Value)
	if hash != result.Hash {
		return false
	}

	index, err := ReduceToIndex(hash, len(seed.Entries))
	if err != nil || index != result.WinnerIndex {
		return false
	}

	return seed.Entries[index].ParticipantID == result.WinnerParticipantID
}
