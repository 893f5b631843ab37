package worker

// Task is a unit of work submitted to the pool.
type Task func()

// Worker drains its task channel on a single goroutine until stopped.
// Submissions after Stop are not drained.
type Worker struct {
	tasks chan Task
	quit  chan struct{}
}

func NewWorker() *Worker {
	return &Worker{
		tasks: make(chan Task),
		quit:  make(chan struct{}),
	}
}

// Start launches the drain loop.
func (w *Worker) Start() {
	go w.loop()
}

func (w *Worker) loop() {
	for {
		select {
		case task := <-w.tasks:
			task()
		case <-w.quit:
			return
		}
	}
}

// Stop terminates the drain loop. A task already running finishes.
func (w *Worker) Stop() {
	close(w.quit)
}

// Submit blocks until the worker accepts the task.
func (w *Worker) Submit(task Task) {
	w.tasks <- task
}
