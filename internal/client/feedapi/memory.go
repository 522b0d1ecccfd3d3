package feedapi

import (
	"context"
	"sort"
	"sync"

	"github.com/Kisalay21/familytree/internal/client/models"
	"github.com/google/uuid"
)

// Memory is an in-process Collection. Snapshots are delivered synchronously
// from the mutating call.
type Memory struct {
	mu      sync.Mutex
	posts   []models.Post
	subs    map[int]func(posts []models.Post, err error)
	nextSub int
}

func NewMemory() *Memory {
	return &Memory{subs: make(map[int]func(posts []models.Post, err error))}
}

func (m *Memory) Append(ctx context.Context, post models.Post) (string, error) {
	m.mu.Lock()
	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	m.posts = append(m.posts, post)
	id := post.ID
	m.mu.Unlock()

	m.broadcast()
	return id, nil
}

func (m *Memory) Update(ctx context.Context, id string, patch Patch) error {
	m.mu.Lock()
	found := false
	for i := range m.posts {
		if m.posts[i].ID == id {
			patch.Apply(&m.posts[i])
			found = true
			break
		}
	}
	m.mu.Unlock()

	if found {
		m.broadcast()
	}
	return nil
}

func (m *Memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	found := false
	for i := range m.posts {
		if m.posts[i].ID == id {
			m.posts = append(m.posts[:i], m.posts[i+1:]...)
			found = true
			break
		}
	}
	m.mu.Unlock()

	if found {
		m.broadcast()
	}
	return nil
}

func (m *Memory) Subscribe(ctx context.Context, fn func(posts []models.Post, err error)) (func(), error) {
	m.mu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	m.mu.Unlock()

	fn(m.Snapshot(), nil)

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subs, id)
	}, nil
}

// Snapshot returns a copy of the collection ordered by timestamp descending.
func (m *Memory) Snapshot() []models.Post {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

func (m *Memory) snapshotLocked() []models.Post {
	out := make([]models.Post, len(m.posts))
	copy(out, m.posts)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp > out[j].Timestamp
	})
	return out
}

func (m *Memory) broadcast() {
	m.mu.Lock()
	snapshot := m.snapshotLocked()
	fns := make([]func(posts []models.Post, err error), 0, len(m.subs))
	for _, fn := range m.subs {
		fns = append(fns, fn)
	}
	m.mu.Unlock()

	for _, fn := range fns {
		fn(snapshot, nil)
	}
}
