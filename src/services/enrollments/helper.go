package enrollments

import (
	"math"

	"Backend-CrickZone/src/models"
)

// Both certificate thresholds sit at 75%
const certificateThreshold = 75

// RecomputePercentage returns round(completed/total*100) clamped to
// [0,100]. total <= 0 is defined as 0%, never NaN.
func RecomputePercentage(completedSessions, totalSessions int) int {
	if totalSessions <= 0 {
		return 0
	}
	pct := int(math.Round(float64(completedSessions) / float64(totalSessions) * 100))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// ClampCompleted keeps completedSessions inside [0, totalSessions]
func ClampCompleted(completedSessions, totalSessions int) int {
	if completedSessions < 0 {
		return 0
	}
	if totalSessions >= 0 && completedSessions > totalSessions {
		return totalSessions
	}
	return completedSessions
}

// ApplyProgressDelta returns the progress block after adding delta
// completed sessions, with both clamps applied.
func ApplyProgressDelta(progress models.EnrollmentProgress, delta int) models.EnrollmentProgress {
	completed := ClampCompleted(progress.CompletedSessions+delta, progress.TotalSessions)
	return models.EnrollmentProgress{
		CompletedSessions:  completed,
		TotalSessions:      progress.TotalSessions,
		ProgressPercentage: RecomputePercentage(completed, progress.TotalSessions),
	}
}

// EvaluateEligibility applies the two 75% thresholds and reports which were
// met, so a rejection can be explained to the participant.
func EvaluateEligibility(attendedCount, completedSessions, totalSessions int) models.EligibilityResult {
	attendancePct := RecomputePercentage(attendedCount, totalSessions)
	progressPct := RecomputePercentage(completedSessions, totalSessions)

	attendanceMet := attendancePct >= certificateThreshold
	progressMet := progressPct >= certificateThreshold

	return models.EligibilityResult{
		IsEligible:           attendanceMet && progressMet,
		AttendancePercentage: attendancePct,
		ProgressPercentage:   progressPct,
		Requirements: models.EligibilityRequirements{
			AttendanceMet: attendanceMet,
			ProgressMet:   progressMet,
		},
	}
}

// crossedMilestone reports the highest of 50/75/100 newly reached when the
// percentage moves from oldPct to newPct, or 0 if none.
func crossedMilestone(oldPct, newPct int) int {
	for _, m := range []int{100, 75, 50} {
		if oldPct < m && newPct >= m {
			return m
		}
	}
	return 0
}
