package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockJobQueueForTest creates a new mock JobQueue for testing
func NewMockJobQueueForTest(t *testing.T) *MockJobQueue {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockJobQueue(ctrl)
}

// NewMockCacheForTest creates a new mock Cache for testing
func NewMockCacheForTest(t *testing.T) *MockCache {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockCache(ctrl)
}

// NewMockLockerForTest creates a new mock Locker for testing
func NewMockLockerForTest(t *testing.T) *MockLocker {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockLocker(ctrl)
}
