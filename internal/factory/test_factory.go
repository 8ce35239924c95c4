package factory

import (
	"log/slog"
	"time"

	"github.com/mcoot/quirkle-go/internal/dependencies/mocks"
	"github.com/mcoot/quirkle-go/internal/storage/memory"
	"github.com/mcoot/quirkle-go/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	return NewTestAppWithLogger(testutil.NopLogger())
}

// NewTestAppWithLogger is NewTestApp with a caller-supplied logger
func NewTestAppWithLogger(logger *slog.Logger) *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, logger)

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}
