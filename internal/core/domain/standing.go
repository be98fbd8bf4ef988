package domain

import "fmt"

// SP level thresholds, evaluated from the highest down. First match wins.
const (
	spLevel3Threshold = 10
	spLevel2Threshold = 7
	spLevel1Threshold = 4
)

// StandingForAbsences maps an absence total to a target SP level and note.
// Level 0 carries no note.
func StandingForAbsences(absences int) (level int, note string) {
	switch {
	case absences >= spLevel3Threshold:
		level = 3
	case absences >= spLevel2Threshold:
		level = 2
	case absences >= spLevel1Threshold:
		level = 1
	default:
		return 0, ""
	}
	return level, fmt.Sprintf("Level %d: Total %dx absent", level, absences)
}
