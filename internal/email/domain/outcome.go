package domain

// EmailOutcome is the dispatcher-level result of a send operation.
//
// Success reports whether the operation as a whole completed; it stays true
// even when individual recipients failed ("partial success"), and only flips
// to false on a systemic transport fault. FailedRecipients preserves the
// input order of the recipients that could not be delivered to.
type EmailOutcome struct {
	Success          bool
	FailedRecipients []string
	Err              string
}
