package swipe

import (
	"context"
	"errors"
	"testing"

	"github.com/craftlink/craftlink-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockSwipeRepo struct {
	mock.Mock
}

func (m *mockSwipeRepo) Create(ctx context.Context, swipe *domain.Swipe) error {
	args := m.Called(ctx, swipe)
	return args.Error(0)
}

func (m *mockSwipeRepo) GetByUsers(ctx context.Context, swiperID, swipedID int) (*domain.Swipe, error) {
	args := m.Called(ctx, swiperID, swipedID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Swipe), args.Error(1)
}

func (m *mockSwipeRepo) HasMutualLike(ctx context.Context, swiperID, swipedID int) (bool, error) {
	args := m.Called(ctx, swiperID, swipedID)
	return args.Bool(0), args.Error(1)
}

func (m *mockSwipeRepo) GetLikesReceived(ctx context.Context, swipedID, limit, offset int) ([]*domain.Swipe, error) {
	args := m.Called(ctx, swipedID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Swipe), args.Error(1)
}

func (m *mockSwipeRepo) Delete(ctx context.Context, swiperID, swipedID int) error {
	args := m.Called(ctx, swiperID, swipedID)
	return args.Error(0)
}

func (m *mockSwipeRepo) DeletePasses(ctx context.Context, swiperID int) (int, error) {
	args := m.Called(ctx, swiperID)
	return args.Int(0), args.Error(1)
}

type mockProfileRepo struct {
	mock.Mock
}

func (m *mockProfileRepo) Create(ctx context.Context, profile *domain.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *mockProfileRepo) GetByCreatorID(ctx context.Context, creatorID int) (*domain.Profile, error) {
	args := m.Called(ctx, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *mockProfileRepo) GetByHandle(ctx context.Context, handle string) (*domain.Profile, error) {
	args := m.Called(ctx, handle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *mockProfileRepo) Update(ctx context.Context, profile *domain.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *mockProfileRepo) UpdateOnboardingStatus(ctx context.Context, creatorID int, isComplete bool) error {
	args := m.Called(ctx, creatorID, isComplete)
	return args.Error(0)
}

type mockDetector struct {
	mock.Mock
}

func (m *mockDetector) CheckAndCreateMatch(ctx context.Context, viewerID, subjectID int) (*domain.Match, error) {
	args := m.Called(ctx, viewerID, subjectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Match), args.Error(1)
}

func newTestUseCase() (*UseCase, *mockSwipeRepo, *mockProfileRepo, *mockDetector) {
	swipeRepo := new(mockSwipeRepo)
	profileRepo := new(mockProfileRepo)
	detector := new(mockDetector)
	uc := NewUseCase(swipeRepo, profileRepo, detector, zap.NewNop())
	return uc, swipeRepo, profileRepo, detector
}

func TestRecordLikePersistsAndRunsDetector(t *testing.T) {
	uc, swipeRepo, _, detector := newTestUseCase()

	swipeRepo.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.Swipe) bool {
		return s.SwiperID == 1 && s.SwipedID == 2 && s.IsLike
	})).Return(nil)
	detector.On("CheckAndCreateMatch", mock.Anything, 1, 2).Return(&domain.Match{ID: 7}, nil)

	err := uc.RecordLike(context.Background(), 1, 2)

	assert.NoError(t, err)
	swipeRepo.AssertExpectations(t)
	detector.AssertExpectations(t)
}

func TestRecordLikeDuplicateIsIdempotent(t *testing.T) {
	uc, swipeRepo, _, detector := newTestUseCase()

	swipeRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrSwipeAlreadyExists)
	// The detector still runs on a duplicate like so a previously failed
	// match creation gets another chance.
	detector.On("CheckAndCreateMatch", mock.Anything, 1, 2).Return(&domain.Match{ID: 7}, nil)

	err := uc.RecordLike(context.Background(), 1, 2)

	assert.NoError(t, err)
	detector.AssertExpectations(t)
}

func TestRecordLikePersistenceFailureSurfaces(t *testing.T) {
	uc, swipeRepo, _, detector := newTestUseCase()

	swipeRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))

	err := uc.RecordLike(context.Background(), 1, 2)

	assert.Error(t, err)
	detector.AssertNotCalled(t, "CheckAndCreateMatch", mock.Anything, mock.Anything, mock.Anything)
}

func TestRecordLikeDetectorFailureIsSwallowed(t *testing.T) {
	uc, swipeRepo, _, detector := newTestUseCase()

	swipeRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	detector.On("CheckAndCreateMatch", mock.Anything, 1, 2).Return(nil, errors.New("conversation create failed"))

	err := uc.RecordLike(context.Background(), 1, 2)

	assert.NoError(t, err, "the like is durable even when match side effects fail")
}

func TestRecordLikeRejectsSelf(t *testing.T) {
	uc, swipeRepo, _, _ := newTestUseCase()

	err := uc.RecordLike(context.Background(), 5, 5)

	assert.ErrorIs(t, err, domain.ErrCannotSwipeSelf)
	swipeRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRecordPassSwallowsPersistenceFailure(t *testing.T) {
	uc, swipeRepo, _, _ := newTestUseCase()

	swipeRepo.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.Swipe) bool {
		return !s.IsLike
	})).Return(errors.New("db down"))

	err := uc.RecordPass(context.Background(), 1, 2)

	assert.NoError(t, err)
}

func TestRecordPassDuplicateIsIdempotent(t *testing.T) {
	uc, swipeRepo, _, _ := newTestUseCase()

	swipeRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrSwipeAlreadyExists)

	err := uc.RecordPass(context.Background(), 1, 2)

	assert.NoError(t, err)
}

func TestGetLikesReceivedSkipsMissingProfiles(t *testing.T) {
	uc, swipeRepo, profileRepo, _ := newTestUseCase()

	swipeRepo.On("GetLikesReceived", mock.Anything, 1, 50, 0).Return([]*domain.Swipe{
		{ID: 100, SwiperID: 2, SwipedID: 1, IsLike: true},
		{ID: 101, SwiperID: 3, SwipedID: 1, IsLike: true},
	}, nil)
	profileRepo.On("GetByCreatorID", mock.Anything, 2).Return(&domain.Profile{CreatorID: 2, DisplayName: "Ben"}, nil)
	profileRepo.On("GetByCreatorID", mock.Anything, 3).Return(nil, domain.ErrProfileNotFound)

	likes, err := uc.GetLikesReceived(context.Background(), 1, 50, 0)

	assert.NoError(t, err)
	assert.Len(t, likes, 1)
	assert.Equal(t, 100, likes[0].SwipeID)
	assert.Equal(t, "Ben", likes[0].Profile.DisplayName)
}

func TestResetPassesReturnsCount(t *testing.T) {
	uc, swipeRepo, _, _ := newTestUseCase()

	swipeRepo.On("DeletePasses", mock.Anything, 1).Return(12, nil)

	count, err := uc.ResetPasses(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, 12, count)
}
