package service

import (
	"errors"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/samridhisinghh987188/saas-contract-dashboard/config"
	"github.com/samridhisinghh987188/saas-contract-dashboard/model"
)

// ErrTaskNotFound is returned when an upload task id is unknown.
var ErrTaskNotFound = errors.New("upload task not found")

// FileDescriptor describes a file handed to the simulator.
type FileDescriptor struct {
	Name string `json:"name" binding:"required"`
	Size int64  `json:"size"`
}

// UploadSimulator drives fake upload progress. Each task owns one
// ticker goroutine; the stop handle is kept alongside the task and
// invoked exactly once when the task turns terminal or is discarded,
// so no timer outlives its task.
type UploadSimulator struct {
	tick         time.Duration
	maxIncrement float64
	successRate  float64

	mu    sync.Mutex
	tasks map[string]*model.UploadTask
	stops map[string]chan struct{}
	order []string
	rng   *rand.Rand
}

// NewUploadSimulator builds a simulator from config.
func NewUploadSimulator(cfg *config.UploadConfig) *UploadSimulator {
	return &UploadSimulator{
		tick:         time.Duration(cfg.TickIntervalMs) * time.Millisecond,
		maxIncrement: cfg.MaxIncrement,
		successRate:  cfg.SuccessRate,
		tasks:        make(map[string]*model.UploadTask),
		stops:        make(map[string]chan struct{}),
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Enqueue registers one task per file and starts its progress ticker.
// It returns immediately with snapshots of the created tasks.
func (u *UploadSimulator) Enqueue(files []FileDescriptor) []model.UploadTask {
	now := time.Now()
	created := make([]model.UploadTask, 0, len(files))

	u.mu.Lock()
	for _, f := range files {
		task := &model.UploadTask{
			ID:        ulid.Make().String(),
			Name:      f.Name,
			Size:      f.Size,
			Status:    model.UploadStatusUploading,
			Progress:  0,
			CreatedAt: now,
			UpdatedAt: now,
		}
		stop := make(chan struct{})
		u.tasks[task.ID] = task
		u.stops[task.ID] = stop
		u.order = append(u.order, task.ID)
		created = append(created, *task)

		go u.run(task.ID, stop)
	}
	u.mu.Unlock()

	slog.Info("upload tasks enqueued", "count", len(created))
	return created
}

// run advances one task until it turns terminal or is cancelled.
func (u *UploadSimulator) run(id string, stop chan struct{}) {
	ticker := time.NewTicker(u.tick)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if u.advance(id) {
				return
			}
		}
	}
}

// advance applies one progress tick. It returns true once the task is
// terminal (or gone) and its ticker should stop.
func (u *UploadSimulator) advance(id string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	task, ok := u.tasks[id]
	if !ok || task.Terminal() {
		u.releaseLocked(id)
		return true
	}

	// Uniform draw from (0, maxIncrement]
	task.Progress += u.maxIncrement - u.rng.Float64()*u.maxIncrement
	task.UpdatedAt = time.Now()

	if task.Progress < 100 {
		return false
	}

	// Terminal outcome is decided exactly once, on reaching 100%
	task.Progress = 100
	if u.rng.Float64() < u.successRate {
		task.Status = model.UploadStatusSuccess
	} else {
		task.Status = model.UploadStatusError
	}
	u.releaseLocked(id)

	slog.Debug("upload task finished", "task_id", id, "status", task.Status)
	return true
}

// Cancel discards a task and stops its ticker. Cancelling a terminal
// task just removes it.
func (u *UploadSimulator) Cancel(id string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if _, ok := u.tasks[id]; !ok {
		return ErrTaskNotFound
	}

	u.releaseLocked(id)
	delete(u.tasks, id)
	for i, tid := range u.order {
		if tid == id {
			u.order = append(u.order[:i], u.order[i+1:]...)
			break
		}
	}
	return nil
}

// Shutdown stops every outstanding ticker. Task states are left as-is.
func (u *UploadSimulator) Shutdown() {
	u.mu.Lock()
	defer u.mu.Unlock()
	for id := range u.stops {
		u.releaseLocked(id)
	}
}

// releaseLocked closes a task's stop channel once. Must be called with
// the lock held.
func (u *UploadSimulator) releaseLocked(id string) {
	if stop, ok := u.stops[id]; ok {
		close(stop)
		delete(u.stops, id)
	}
}

// Tasks returns snapshots of all tasks in enqueue order.
func (u *UploadSimulator) Tasks() []model.UploadTask {
	u.mu.Lock()
	defer u.mu.Unlock()

	result := make([]model.UploadTask, 0, len(u.order))
	for _, id := range u.order {
		if task, ok := u.tasks[id]; ok {
			result = append(result, *task)
		}
	}
	return result
}

// Task returns a snapshot of one task.
func (u *UploadSimulator) Task(id string) (model.UploadTask, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	task, ok := u.tasks[id]
	if !ok {
		return model.UploadTask{}, ErrTaskNotFound
	}
	return *task, nil
}

// ActiveTimers reports how many tickers are still registered.
func (u *UploadSimulator) ActiveTimers() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.stops)
}
