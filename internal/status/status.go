// Package status defines the outcome taxonomy for a group-definition load attempt.
package status

// Status is the terminal outcome of the most recent load attempt. The zero
// value is Ok, which is also the reset state when a new attempt starts.
// Failure states are terminal for the current attempt; only a fresh
// Configure call returns the loader to Ok.
type Status int

const (
	// Ok means the attempt has not failed (initial and reset state).
	Ok Status = iota

	// FailedBadConfiguration means the configured URL was invalid or the
	// transport could not be started.
	FailedBadConfiguration

	// FailedBadData means the fetched document was structurally malformed.
	FailedBadData

	// FailedInternalError means a completion was observed with no pending
	// request, or with an unfinished one. A protocol violation, not an
	// expected runtime condition.
	FailedInternalError

	// FailedNetworkError means the transport reported a transfer error,
	// including timeouts.
	FailedNetworkError
)

// Description returns the fixed user-facing message for the status.
// Ok maps to the empty string.
func (s Status) Description() string {
	switch s {
	case Ok:
		return ""
	case FailedBadConfiguration:
		return "Network Installation. (Disabled: Incorrect configuration)"
	case FailedBadData:
		return "Network Installation. (Disabled: Received invalid groups data)"
	case FailedInternalError:
		return "Network Installation. (Disabled: internal error)"
	case FailedNetworkError:
		return "Network Installation. (Disabled: Unable to fetch package lists, check your network connection)"
	default:
		return "Network Installation. (Disabled: internal error)"
	}
}

// String returns the status name for logs.
func (s Status) String() string {
	switch s {
	case Ok:
		return "Ok"
	case FailedBadConfiguration:
		return "FailedBadConfiguration"
	case FailedBadData:
		return "FailedBadData"
	case FailedInternalError:
		return "FailedInternalError"
	case FailedNetworkError:
		return "FailedNetworkError"
	default:
		return "Unknown"
	}
}

// Failed reports whether the status is one of the failure states.
func (s Status) Failed() bool {
	return s != Ok
}
