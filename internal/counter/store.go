package counter

import "sync"

// Settings 通过 /api/test/settings 暴露的计数器状态
type Settings struct {
	Value float64 `json:"value"`
	Step  float64 `json:"step"`
}

// Store 进程内计数器，每个实例相互独立
type Store struct {
	mu       sync.Mutex
	settings Settings
}

// NewStore 创建计数器，配置的步长原样保留（包括 0）
func NewStore(initial, step float64) *Store {
	return &Store{settings: Settings{Value: initial, Step: step}}
}

// Settings 返回当前状态的副本
func (s *Store) Settings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// Update 更新 value 和/或 step，step 为 0 时忽略
func (s *Store) Update(value, step *float64) Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	if value != nil {
		s.settings.Value = *value
	}
	if step != nil && *step != 0 {
		s.settings.Step = *step
	}
	return s.settings
}

// ReadAndIncrement 返回当前值并前进一个步长
func (s *Store) ReadAndIncrement() (current, next float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current = s.settings.Value
	next = current + s.settings.Step
	s.settings.Value = next
	return current, next
}
