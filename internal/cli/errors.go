package cli

import (
	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
)

// Error tags, mapped to exit codes by ExitCode.
const (
	tagUsage    = "usage"
	tagNotFound = "not_found"
)

func usageError(err error, issue string) error {
	return fault.Wrap(err, ftag.With(tagUsage), fmsg.WithDesc("invalid arguments", issue))
}

func notFoundError(err error, issue string) error {
	return fault.Wrap(err, ftag.With(tagNotFound), fmsg.WithDesc("not found", issue))
}

// ExitCode returns the process status for an error returned by the root command.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch ftag.Get(err) {
	case tagUsage:
		return 2
	case tagNotFound:
		return 3
	default:
		return 1
	}
}

// Message returns the text shown to the user for err: its user-facing issue
// when one was attached, else the full error chain.
func Message(err error) string {
	if issue := fmsg.GetIssue(err); issue != "" {
		return issue + " (" + err.Error() + ")"
	}
	return err.Error()
}
