package main

import "time"

// TUI messages for the Elm architecture

// saveResultMsg reports the result of writing the selection file
type saveResultMsg struct {
	err error
}

// killResultMsg carries the outcome of a kill pass
type killResultMsg struct {
	result KillResult
}

// clearStatusMsg ends the status line set at the given time
type clearStatusMsg struct {
	set time.Time
}
