package catalog

import "sync"

// ProgressTracker records completed step IDs per learning path. State lives
// only in memory for the lifetime of the process; nothing is persisted.
type ProgressTracker struct {
	mu        sync.RWMutex
	completed map[string]map[string]bool // pathID -> stepID -> done
}

func NewProgressTracker() *ProgressTracker {
	return &ProgressTracker{
		completed: make(map[string]map[string]bool),
	}
}

// Toggle flips the completion state of a step and reports the new state.
func (t *ProgressTracker) Toggle(pathID, stepID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	steps, ok := t.completed[pathID]
	if !ok {
		steps = make(map[string]bool)
		t.completed[pathID] = steps
	}
	if steps[stepID] {
		delete(steps, stepID)
		return false
	}
	steps[stepID] = true
	return true
}

// Completed returns the set of completed step IDs for a path.
func (t *ProgressTracker) Completed(pathID string) map[string]bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make(map[string]bool, len(t.completed[pathID]))
	for id, done := range t.completed[pathID] {
		if done {
			out[id] = true
		}
	}
	return out
}

// Percent derives completion percentage for the given path.
func (t *ProgressTracker) Percent(path LearningPath) int {
	if len(path.Steps) == 0 {
		return 0
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	done := 0
	for _, step := range path.Steps {
		if t.completed[path.ID][step.ID] {
			done++
		}
	}
	return done * 100 / len(path.Steps)
}

// Reset clears all recorded progress for a path.
func (t *ProgressTracker) Reset(pathID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.completed, pathID)
}
