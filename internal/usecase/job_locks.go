package usecase

import "sync"

// jobLockTable hands out one mutex per job id so the facade serializes all
// in-process mutations for a given job. The cross-process guarantee comes
// from the conditional transactional writes; this only removes local
// contention and thundering retries.
//
// Entries are never evicted: the per-job footprint is one mutex and the id
// space is bounded by live jobs in a single process.
type jobLockTable struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newJobLockTable() *jobLockTable {
	return &jobLockTable{locks: make(map[string]*sync.Mutex)}
}

func (t *jobLockTable) forJob(jobID string) *sync.Mutex {
	t.mu.Lock()
	defer t.mu.Unlock()
	l, ok := t.locks[jobID]
	if !ok {
		l = &sync.Mutex{}
		t.locks[jobID] = l
	}
	return l
}
