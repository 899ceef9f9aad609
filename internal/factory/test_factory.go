package factory

import (
	"time"

	"github.com/mcoot/scorekeeper/internal/dependencies/mocks"
	"github.com/mcoot/scorekeeper/internal/metrics"
	"github.com/mcoot/scorekeeper/internal/storage"
	"github.com/mcoot/scorekeeper/internal/storage/memory"
	"github.com/mcoot/scorekeeper/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Backend is the raw in-memory store beneath the namespace
	Backend *memory.Storage

	// Mocks for test control
	MockClock *mocks.MockClock
	MockIDs   *mocks.MockIDGenerator
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	backend := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockIDs := mocks.NewMockIDGenerator()

	app := newWithDependencies(
		storage.WithNamespace(backend, storage.DefaultNamespace),
		mockClock,
		mockIDs,
		metrics.NewRecorder(),
		0,
		testutil.NopLogger(),
	)

	return &TestApp{
		App:       app,
		Backend:   backend,
		MockClock: mockClock,
		MockIDs:   mockIDs,
	}
}
