package counter

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func f(v float64) *float64 { return &v }

func TestStore_ReadAndIncrement(t *testing.T) {
	s := NewStore(5, 2)

	current, next := s.ReadAndIncrement()
	assert.Equal(t, 5.0, current)
	assert.Equal(t, 7.0, next)

	current, next = s.ReadAndIncrement()
	assert.Equal(t, 7.0, current)
	assert.Equal(t, 9.0, next)
}

func TestStore_Update(t *testing.T) {
	testCases := []struct {
		name     string
		value    *float64
		step     *float64
		expected Settings
	}{
		{name: "Value only", value: f(10), expected: Settings{Value: 10, Step: 1}},
		{name: "Step only", step: f(3), expected: Settings{Value: 0, Step: 3}},
		{name: "Zero step ignored", value: f(4), step: f(0), expected: Settings{Value: 4, Step: 1}},
		{name: "Negative step", step: f(-1), expected: Settings{Value: 0, Step: -1}},
		{name: "Nothing", expected: Settings{Value: 0, Step: 1}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewStore(0, 1)
			assert.Equal(t, tc.expected, s.Update(tc.value, tc.step))
			assert.Equal(t, tc.expected, s.Settings())
		})
	}
}

func TestNewStore_ZeroStepKept(t *testing.T) {
	s := NewStore(3, 0)
	assert.Equal(t, Settings{Value: 3, Step: 0}, s.Settings())

	current, next := s.ReadAndIncrement()
	assert.Equal(t, 3.0, current)
	assert.Equal(t, 3.0, next)

	// 只有更新请求会忽略 0 步长
	assert.Equal(t, Settings{Value: 3, Step: 0}, s.Update(nil, f(0)))
	assert.Equal(t, Settings{Value: 3, Step: 2}, s.Update(nil, f(2)))
}

func TestStore_Concurrent(t *testing.T) {
	s := NewStore(0, 1)

	const goroutines = 50
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.ReadAndIncrement()
		}()
	}
	wg.Wait()

	assert.Equal(t, float64(goroutines), s.Settings().Value)
}
