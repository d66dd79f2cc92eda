package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/aliskhannn/memory-game-bot/internal/domain/entities"
)

// MockContactRepository is a mock implementation of ContactRepository
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) GetAll(ctx context.Context, playerID int64) ([]entities.Contact, error) {
	args := m.Called(ctx, playerID)
	return args.Get(0).([]entities.Contact), args.Error(1)
}

func (m *MockContactRepository) SaveAll(ctx context.Context, playerID int64, contacts []entities.Contact) error {
	args := m.Called(ctx, playerID, contacts)
	return args.Error(0)
}

// MockScoreRepository is a mock implementation of ScoreRepository
type MockScoreRepository struct {
	mock.Mock
}

func (m *MockScoreRepository) Get(ctx context.Context, playerID int64) (entities.BestScores, error) {
	args := m.Called(ctx, playerID)
	return args.Get(0).(entities.BestScores), args.Error(1)
}

func (m *MockScoreRepository) Save(ctx context.Context, playerID int64, scores entities.BestScores) error {
	args := m.Called(ctx, playerID, scores)
	return args.Error(0)
}

// MockOTPRepository is a mock implementation of OTPRepository
type MockOTPRepository struct {
	mock.Mock
}

func (m *MockOTPRepository) Get(ctx context.Context, playerID int64) (entities.OTPStats, error) {
	args := m.Called(ctx, playerID)
	return args.Get(0).(entities.OTPStats), args.Error(1)
}

func (m *MockOTPRepository) Save(ctx context.Context, playerID int64, stats entities.OTPStats) error {
	args := m.Called(ctx, playerID, stats)
	return args.Error(0)
}
