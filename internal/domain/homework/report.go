package homework

// Report is the most recently observed status summary.
// Two reports are compared with == to detect a change between polls.
type Report struct {
	Name   string
	Output string
}
