package shell

import "sync/atomic"

// TimerToken identifies a pending timer request. Tokens are process-wide
// unique and monotonically issued; they are never reused.
type TimerToken uint64

// TimerTokenInvalid is the sentinel returned when a timer cannot be
// scheduled, e.g. because the window has been dropped.
const TimerTokenInvalid TimerToken = 0

var timerTokenCounter atomic.Uint64

func nextTimerToken() TimerToken {
	return TimerToken(timerTokenCounter.Add(1))
}

// IdleToken identifies a pre-registered unit of idle work. The toolkit
// assigns the value; the shell only carries it to WinHandler.Idle.
type IdleToken uint64

// FileDialogToken identifies an open file-dialog request.
type FileDialogToken uint64
