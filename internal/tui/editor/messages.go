package editor

// CopiedMsg reports a finished clipboard copy.
type CopiedMsg struct {
	Bytes int
}

// CopyFailedMsg reports a clipboard failure.
type CopyFailedMsg struct {
	Err error
}
