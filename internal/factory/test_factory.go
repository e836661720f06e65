package factory

import (
	"time"

	"github.com/mcoot/battleship-go2/internal/dependencies/mocks"
	"github.com/mcoot/battleship-go2/internal/storage/memory"
	"github.com/mcoot/battleship-go2/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock    *mocks.MockClock
	MockRandom   *mocks.MockRandom
	FixedPlanner *testutil.FixedPlanner
}

// NewTestApp creates an App configured for testing with mocked dependencies.
// Both fleets planned through it sit at column 5 of the even rows.
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockClock.Step = time.Second
	mockRandom := mocks.NewMockRandom()
	planner := &testutil.FixedPlanner{Placements: testutil.StandardFleet(5)}

	app := newWithDependencies(store, mockClock, mockRandom, planner, testutil.NopLogger())

	return &TestApp{
		App:          app,
		MockClock:    mockClock,
		MockRandom:   mockRandom,
		FixedPlanner: planner,
	}
}
