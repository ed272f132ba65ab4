package services

import (
	"fmt"
	"time"
)

// LockoutPolicy decides when repeated login failures lock an account and for
// how long. It holds only configuration fixed at construction; every decision
// is a pure function of its inputs.
type LockoutPolicy struct {
	// MaxAttempts is the failed-attempt count at which the account locks.
	// The boundary is inclusive: the MaxAttempts-th failure locks.
	MaxAttempts int
	// LockoutDuration is how long a triggered lock lasts.
	LockoutDuration time.Duration
}

// DefaultLockoutPolicy returns the stock policy: 5 attempts, 15 minutes.
func DefaultLockoutPolicy() LockoutPolicy {
	return LockoutPolicy{
		MaxAttempts:     5,
		LockoutDuration: 15 * time.Minute,
	}
}

// LockDecision is the outcome of evaluating an attempt count.
type LockDecision struct {
	ShouldLock  bool
	LockedUntil time.Time
}

// Evaluate decides whether an account with the given failed-attempt count
// (already incremented for the current failure) must be locked. When it
// locks, LockedUntil is strictly after now.
func (p LockoutPolicy) Evaluate(attempts int, now time.Time) LockDecision {
	if attempts < p.MaxAttempts {
		return LockDecision{}
	}
	return LockDecision{
		ShouldLock:  true,
		LockedUntil: now.Add(p.LockoutDuration),
	}
}

// IsLocked reports whether a stored expiry still locks the account at the
// given instant. An expiry exactly equal to now counts as expired.
func (p LockoutPolicy) IsLocked(lockedUntil *time.Time, now time.Time) bool {
	return lockedUntil != nil && now.Before(*lockedUntil)
}

// AttemptsRemaining returns how many more failures fit before the policy
// locks, never negative. attempts is the post-increment counter value.
func (p LockoutPolicy) AttemptsRemaining(attempts int) int {
	remaining := p.MaxAttempts - attempts
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Remaining splits the time left on a lock into whole minutes and remainder
// seconds, truncating sub-second precision and clamping at zero. Callers are
// expected to have already established that the lock is active.
func (p LockoutPolicy) Remaining(lockedUntil, now time.Time) (minutes, seconds int) {
	left := lockedUntil.Sub(now)
	if left < 0 {
		return 0, 0
	}
	minutes = int(left / time.Minute)
	seconds = int((left % time.Minute) / time.Second)
	return minutes, seconds
}

// FormatRemaining renders the countdown the way the login response reports
// it, e.g. "14m 59s".
func (p LockoutPolicy) FormatRemaining(lockedUntil, now time.Time) string {
	minutes, seconds := p.Remaining(lockedUntil, now)
	return fmt.Sprintf("%dm %ds", minutes, seconds)
}
