package store

import (
	"sort"
	"sync"
	"time"

	"floorball-games-service/internal/domain"
)

// MemoryStore keeps a thread-safe snapshot of team boards in memory. Reads
// never touch the upstream; the refresher is the only writer.
type MemoryStore struct {
	mu          sync.RWMutex
	boards      map[int]domain.TeamBoard
	lastRefresh time.Time
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		boards: make(map[int]domain.TeamBoard),
	}
}

// SetBoard stores the board for one team.
func (s *MemoryStore) SetBoard(board domain.TeamBoard) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.boards[board.Team.ID] = board
}

// Board retrieves a team's board.
func (s *MemoryStore) Board(teamID int) (domain.TeamBoard, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.boards[teamID]
	return b, ok
}

// Boards returns a copy of all boards, ordered by team id for stable output.
func (s *MemoryStore) Boards() []domain.TeamBoard {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.TeamBoard, 0, len(s.boards))
	for _, b := range s.boards {
		result = append(result, b)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Team.ID < result[j].Team.ID
	})
	return result
}

// MarkRefreshed records that a refresh cycle completed.
func (s *MemoryStore) MarkRefreshed(at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastRefresh = at
}

// Ready reports whether at least one refresh cycle has completed.
func (s *MemoryStore) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.lastRefresh.IsZero()
}

// LastRefresh returns when the store was last repopulated.
func (s *MemoryStore) LastRefresh() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastRefresh
}
