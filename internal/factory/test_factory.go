package factory

import (
	"context"
	"time"

	"github.com/pokearch/registry/internal/dependencies/mocks"
	"github.com/pokearch/registry/internal/model"
	"github.com/pokearch/registry/internal/storage/memory"
	"github.com/pokearch/registry/internal/testutil"
)

// TestOwner is the owner principal bound in test apps
const TestOwner = model.Principal("arch1qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqsxvnwg")

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
}

// NewTestApp creates an App configured for testing with mocked
// dependencies and the test owner already bound.
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	app := newWithDependencies(store, mockClock, TestOwner, testutil.NopLogger())
	if err := app.AccessService.Bootstrap(context.Background(), TestOwner); err != nil {
		panic(err)
	}

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}
}
