package models

// AuthOutcome classifies the terminal state of the server-side credential
// check for a single request. Outcomes are produced per request and never
// persisted; they exist so that handlers and logs can name what happened
// without ever echoing the credential value itself.
type AuthOutcome int

const (
	// OutcomeUnknown is the zero value; no credential check has run.
	OutcomeUnknown AuthOutcome = 0

	// OutcomeAuthenticated means the presented credential matched the
	// server-held secret.
	OutcomeAuthenticated AuthOutcome = 1

	// OutcomeRejectedMissing means the request presented no usable
	// credential: the Authorization header was absent, malformed, or
	// carried an empty token.
	OutcomeRejectedMissing AuthOutcome = 2

	// OutcomeRejectedInvalid means a credential was presented but did not
	// match the server-held secret.
	OutcomeRejectedInvalid AuthOutcome = 3

	// OutcomeServerMisconfigured means the server itself has no secret
	// configured, so no credential could have been accepted. Reported
	// distinctly so operators can tell a server fault from a bad caller.
	OutcomeServerMisconfigured AuthOutcome = 4
)

// String returns the log-friendly name of the outcome.
// Implements the [fmt.Stringer] interface.
func (o AuthOutcome) String() string {
	switch o {
	case OutcomeAuthenticated:
		return "authenticated"
	case OutcomeRejectedMissing:
		return "rejected-missing"
	case OutcomeRejectedInvalid:
		return "rejected-invalid"
	case OutcomeServerMisconfigured:
		return "server-misconfigured"
	default:
		return "unknown"
	}
}
