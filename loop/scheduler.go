// Package loop drives the per-frame update of the game world.
package loop

// Updater runs one frame of work. *ecs.ECS satisfies it.
type Updater interface {
	Update()
}

// Scheduler owns the frame loop. The host calls Tick once per frame; tests
// call Step directly. A stopped scheduler ignores Tick.
type Scheduler struct {
	target  Updater
	running bool
	frame   uint64
}

func New(target Updater) *Scheduler {
	return &Scheduler{target: target}
}

func (s *Scheduler) Start() {
	s.running = true
}

func (s *Scheduler) Stop() {
	s.running = false
}

func (s *Scheduler) Running() bool {
	return s.running
}

// Frame returns the number of frames stepped so far.
func (s *Scheduler) Frame() uint64 {
	return s.frame
}

// Step runs exactly one frame, whether or not the scheduler is running.
func (s *Scheduler) Step() {
	s.target.Update()
	s.frame++
}

// Tick runs one frame if the scheduler is running.
func (s *Scheduler) Tick() {
	if !s.running {
		return
	}
	s.Step()
}
