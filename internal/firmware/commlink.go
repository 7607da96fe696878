package firmware

// CommLink collects firmware diagnostics as human-readable strings. The
// firmware logs into it during Loop; the host drains it between ticks.
type CommLink struct {
	messages []string
}

// NewCommLink returns an empty link.
func NewCommLink() *CommLink { return &CommLink{} }

// Log queues one diagnostic message.
func (c *CommLink) Log(msg string) {
	c.messages = append(c.messages, msg)
}

// GetStatusMessages appends all queued messages to out and clears the
// queue.
func (c *CommLink) GetStatusMessages(out *[]string) {
	if out == nil {
		return
	}
	*out = append(*out, c.messages...)
	c.messages = c.messages[:0]
}
