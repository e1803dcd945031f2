package chatbot

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetOrCreateStartsAtWelcome(t *testing.T) {
	store := NewMemorySessionStore(0)

	session := store.GetOrCreate("+5511999999999")

	assert.Equal(t, StepWelcome, session.CurrentStep)
	assert.NotNil(t, session.Draft)
	assert.Empty(t, session.Draft.CustomerName)
	assert.Equal(t, 1, store.ActiveSessions())
}

func TestGetOrCreateReturnsExistingSession(t *testing.T) {
	store := NewMemorySessionStore(0)

	first := store.GetOrCreate("+5511999999999")
	first.CurrentStep = StepAskType
	first.Draft.CustomerName = "Maria"
	store.Save(first)

	second := store.GetOrCreate("+5511999999999")

	assert.Same(t, first, second)
	assert.Equal(t, StepAskType, second.CurrentStep)
	assert.Equal(t, "Maria", second.Draft.CustomerName)
	assert.Equal(t, 1, store.ActiveSessions())
}

func TestSessionsAreIndependentPerKey(t *testing.T) {
	store := NewMemorySessionStore(0)

	a := store.GetOrCreate("+5511111111111")
	b := store.GetOrCreate("+5522222222222")
	a.Draft.CustomerName = "Maria"

	assert.Empty(t, b.Draft.CustomerName)
	assert.Equal(t, 2, store.ActiveSessions())
}

// Concurrent messages for the same key must not race on the draft: each
// transition runs under the session lock, so every photo append survives.
func TestConcurrentTransitionsAreSerialized(t *testing.T) {
	store := NewMemorySessionStore(0)
	engine := NewEngine(WebPolicy(), &fakeSink{})

	session := store.GetOrCreate("+5511999999999")
	session.CurrentStep = StepAskPhotos

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := store.GetOrCreate("+5511999999999")
			s.Lock()
			defer s.Unlock()
			result := engine.Advance(context.Background(), s.CurrentStep, s.Draft, media("https://example.test/p.jpg"))
			s.CurrentStep = result.NextStep
			store.Save(s)
		}()
	}
	wg.Wait()

	assert.Len(t, session.Draft.Photos, n)
	assert.Equal(t, StepAskPhotos, session.CurrentStep)
}
