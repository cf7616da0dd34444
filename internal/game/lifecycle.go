package game

// Token identifies one activation of a scheduled task. A host schedules the
// next callback with the token it was given; the game ignores callbacks whose
// token is stale.
type Token uint64

// Task is a cancellable scheduled task: the frame driver or the special
// item spawn timer.
type Task struct {
	name   string
	gen    Token
	active bool
}

// Start activates the task under a fresh token.
func (t *Task) Start() Token {
	t.gen++
	t.active = true
	return t.gen
}

// Stop deactivates the task and invalidates its token.
func (t *Task) Stop() {
	if !t.active {
		return
	}
	t.active = false
	t.gen++
}

// Name returns the task name.
func (t *Task) Name() string {
	return t.name
}

// Active reports whether the task is running.
func (t *Task) Active() bool {
	return t.active
}

// Token returns the current token. It is only meaningful while active.
func (t *Task) Token() Token {
	return t.gen
}

// Valid reports whether a callback carrying tok may run.
func (t *Task) Valid(tok Token) bool {
	return t.active && tok == t.gen
}

// lifecycle owns the two tasks and tears them down together.
type lifecycle struct {
	frame Task
	spawn Task
}

func newLifecycle() lifecycle {
	return lifecycle{
		frame: Task{name: "frame"},
		spawn: Task{name: "spawn"},
	}
}

func (l *lifecycle) start() {
	l.frame.Start()
	l.spawn.Start()
}

func (l *lifecycle) stop() {
	l.frame.Stop()
	l.spawn.Stop()
}
