package dialog

// Menu commands the transport sends as plain text. The dialog router on the
// transport side renders them as keyboard buttons; here only the text
// matters, compared after normalization.
const (
	CmdStart      = "/start"
	CmdSuggest    = "suggest topic"
	CmdSearch     = "search topic"
	CmdFree       = "free topics"
	CmdChoose     = "choose topic"
	CmdDetach     = "detach topic"
	CmdRelease    = "release topic"
	CmdApprove    = "approve topic"
	CmdCategories = "by category"
	CmdProfile    = "view profile"
	CmdAnalytics  = "analytics"
	CmdDelete     = "delete account"

	// CmdCancel aborts any non-terminal dialog step.
	CmdCancel = "cancel"
	// InputSkip skips an optional field.
	InputSkip = "skip"
	// InputConfirmDelete is the explicit sentinel account deletion requires.
	InputConfirmDelete = "confirm deletion"
)

func isCancel(input string) bool {
	return normalize(input) == CmdCancel
}

func isSkip(input string) bool {
	return normalize(input) == InputSkip
}
