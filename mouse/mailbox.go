package mouse

// Mailbox is the single pending report slot between the receiver interrupt
// and the dispatch loop. A new post replaces whatever is pending. It is not
// safe for concurrent use; Device guards it.
type Mailbox struct {
	report  Report
	kind    Kind
	pending bool
}

// Post makes r the pending report.
func (mb *Mailbox) Post(r Report, kind Kind) {
	mb.report = r
	mb.kind = kind
	mb.pending = true
}

// Take removes and returns the pending report.
func (mb *Mailbox) Take() (r Report, kind Kind, ok bool) {
	if !mb.pending {
		return Report{}, 0, false
	}
	mb.pending = false
	return mb.report, mb.kind, true
}

// Peek returns the pending report without removing it.
func (mb *Mailbox) Peek() (r Report, kind Kind, ok bool) {
	return mb.report, mb.kind, mb.pending
}

func (mb *Mailbox) Pending() bool {
	return mb.pending
}
