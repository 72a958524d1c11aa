package progress

import "fmt"

// HideoutKey addresses one level of one hideout module as a single string.
// The store writes completion rows under this key and the requirement
// calculator looks them up with it; both sides must use this function rather
// than concatenating strings themselves, or lookups silently miss.
func HideoutKey(moduleID string, level int) string {
	return fmt.Sprintf("%s-%d", moduleID, level)
}

// ProjectKey addresses one phase of one expedition project.
func ProjectKey(projectID string, phase int) string {
	return fmt.Sprintf("%s-%d", projectID, phase)
}
