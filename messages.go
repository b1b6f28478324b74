package sweettea

// openedMsg completes the opening transition. The generation counter
// drops stale messages from a superseded transition.
type openedMsg struct {
	gen int
}

// closedMsg completes the closing transition.
type closedMsg struct {
	gen int
}
