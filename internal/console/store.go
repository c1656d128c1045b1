package console

import (
	"context"
	"sync"
)

// Store 保存某一类记录的内存快照。记录在每次拉取时整体替换，
// 删除操作只做本地剔除，导航离开（进程退出）即丢弃。
type Store[T any] struct {
	mu       sync.Mutex
	fetch    func(context.Context) ([]T, error)
	records  []T
	loaded   bool
	loading  bool
	inflight map[string]struct{}
}

func NewStore[T any](fetch func(context.Context) ([]T, error)) *Store[T] {
	return &Store[T]{
		fetch:    fetch,
		inflight: map[string]struct{}{},
	}
}

// Load 首次加载。已加载或正在加载时直接返回当前快照，
// 即加载标志只拦截重复的首次加载，不拦截手动刷新。
func (s *Store[T]) Load(ctx context.Context) ([]T, error) {
	s.mu.Lock()
	if s.loaded || s.loading {
		snapshot := s.snapshotLocked()
		s.mu.Unlock()
		return snapshot, nil
	}
	s.loading = true
	s.mu.Unlock()

	return s.doFetch(ctx)
}

// Refresh 手动刷新。拉取在锁外进行，多个并发刷新中后返回的响应
// 覆盖先返回的，不做取消（沿用既有行为）。
func (s *Store[T]) Refresh(ctx context.Context) ([]T, error) {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	return s.doFetch(ctx)
}

func (s *Store[T]) doFetch(ctx context.Context) ([]T, error) {
	records, err := s.fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		// 读取失败时回退到空集合，保证之后可以重新进入加载流程
		s.records = nil
		s.loaded = false
		return nil, err
	}

	s.records = records
	s.loaded = true
	return s.snapshotLocked(), nil
}

func (s *Store[T]) snapshotLocked() []T {
	snapshot := make([]T, len(s.records))
	copy(snapshot, s.records)
	return snapshot
}

func (s *Store[T]) Records() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store[T]) Find(match func(T) bool) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, record := range s.records {
		if match(record) {
			return record, true
		}
	}

	var zero T
	return zero, false
}

// RemoveFunc 从快照中剔除匹配的记录，返回是否有记录被剔除
func (s *Store[T]) RemoveFunc(match func(T) bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.records[:0]
	removed := false
	for _, record := range s.records {
		if !removed && match(record) {
			removed = true
			continue
		}
		kept = append(kept, record)
	}
	s.records = kept

	return removed
}

// BeginAction 标记某条记录的操作正在进行，用于禁止同一条记录的重复提交。
// 不同记录之间的操作互不影响。
func (s *Store[T]) BeginAction(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.inflight[id]; ok {
		return false
	}
	s.inflight[id] = struct{}{}
	return true
}

func (s *Store[T]) EndAction(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, id)
}
