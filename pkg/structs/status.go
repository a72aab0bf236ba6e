package structs

import (
	"strings"
)

// TaskState is the lifecycle state of a Task as published into the registry.
type TaskState string

const (
	// transient states
	TaskNone    TaskState = "None"
	TaskWorking TaskState = "Working"

	// end states
	TaskSuccess                TaskState = "Success"
	TaskFinishedWithError      TaskState = "FinishedWithError"
	TaskFinishedWithFatalError TaskState = "FinishedWithFatalError"
	TaskAborted                TaskState = "Aborted"
)

func IsFinalTaskState(state TaskState) bool {
	switch state {
	case TaskSuccess, TaskFinishedWithError, TaskFinishedWithFatalError, TaskAborted:
		return true
	default:
		return false
	}
}

// IsUsableTaskState returns if a terminal state still carries output worth harvesting.
func IsUsableTaskState(state TaskState) bool {
	return state == TaskSuccess || state == TaskFinishedWithError
}

func ToTaskState(s string) TaskState {
	switch strings.ToLower(s) {
	case "none":
		return TaskNone
	case "working":
		return TaskWorking
	case "success":
		return TaskSuccess
	case "finishedwitherror":
		return TaskFinishedWithError
	case "finishedwithfatalerror":
		return TaskFinishedWithFatalError
	case "aborted":
		return TaskAborted
	default:
		return ""
	}
}
