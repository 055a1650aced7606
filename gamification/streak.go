package gamification

import "time"

// StreakUpdate is the result of applying a check-in to a user's streak state.
type StreakUpdate struct {
	Current int
	Longest int
}

// NextStreak computes the consecutive-day streak after a check-in at now.
// A missing or stale last check-in resets the streak to 1, checking in on the
// day after the last one extends it, and a second check-in on the same day
// holds the current value. Longest only moves when the new current exceeds it.
func NextStreak(last *time.Time, now time.Time, current, longest int) StreakUpdate {
	next := 1
	if last != nil {
		diff := daysBetween(*last, now)
		switch {
		case diff == 0:
			next = current
			if next < 1 {
				next = 1
			}
		case diff == 1:
			next = current + 1
		}
	}
	if next > longest {
		longest = next
	}
	return StreakUpdate{Current: next, Longest: longest}
}

// daysBetween counts calendar days from a to b, both truncated to local
// midnight so the hour of the check-in never matters.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	start := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	end := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours() / 24)
}
