package draw

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// BucketSizeMillis is the width of the coarse time bucket mixed into every
// seed: 5 minutes. Coarse enough that an independent verifier does not need a
// microsecond-exact clock, because the bucket value used at generation time is
// published inside the seed itself.
const BucketSizeMillis int64 = 5 * 60 * 1000

// Seed string delimiters. Sections (sweepstake id, entries, bucket) are joined
// with '|', entries with ';', entry fields with ':'. Any field containing one
// of these bytes is rejected so no two distinct inputs can encode to the same
// seed string.
const (
	fieldSeparator   = ":"
	entrySeparator   = ";"
	sectionSeparator = "|"
)

// TimeBucket truncates t down to the bucket width, in epoch milliseconds.
func TimeBucket(t time.Time) int64 {
	ms := t.UnixMilli()
	return (ms / BucketSizeMillis) * BucketSizeMillis
}

// BuildSeed derives the deterministic seed for one draw from the sweepstake
// identity, the participant entries and the current wall clock. Entry order is
// irrelevant; entries are sorted by participant id internally.
func BuildSeed(sweepstakeID string, entries []Entry, now time.Time) (*Seed, error) {
	return BuildSeedAt(sweepstakeID, entries, TimeBucket(now))
}

// BuildSeedAt derives the seed for a fixed, already-known time bucket. The
// verification path uses this with the bucket persisted in the proof; it must
// never re-read the clock, or any draw verified outside its original bucket
// window would fail.
func BuildSeedAt(sweepstakeID string, entries []Entry, bucket int64) (*Seed, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyParticipantSet
	}

	if containsDelimiter(sweepstakeID) {
		return nil, ErrInvalidFieldValue
	}

	// Sort a copy by participant id, ordinal string comparison. Insertion
	// order is not reproducible; this order is, and it is the order the
	// winner index selects from.
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ParticipantID < sorted[j].ParticipantID
	})

	var sb strings.Builder
	sb.WriteString(sweepstakeID)
	sb.WriteString(sectionSeparator)

	for i, entry := range sorted {
		if containsDelimiter(entry.ParticipantID) || containsDelimiter(entry.UserID) {
			return nil, ErrInvalidFieldValue
		}

		if i > 0 {
			sb.WriteString(entrySeparator)
		}
		sb.WriteString(entry.ParticipantID)
		sb.WriteString(fieldSeparator)
		sb.WriteString(entry.UserID)
		sb.WriteString(fieldSeparator)
		sb.WriteString(strconv.FormatInt(entry.JoinedAt.UnixMilli(), 10))
	}

	sb.WriteString(sectionSeparator)
	sb.WriteString(strconv.FormatInt(bucket, 10))

	return &Seed{
		SweepstakeID: sweepstakeID,
		Entries:      sorted,
		TimeBucket:   bucket,
		Value:        sb.String(),
	}, nil
}

// containsDelimiter reports whether a field value would make the seed string
// ambiguous.
func containsDelimiter(value string) bool {
	return strings.ContainsAny(value, fieldSeparator+entrySeparator+sectionSeparator)
}
