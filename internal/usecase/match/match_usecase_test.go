package match

import (
	"context"
	"errors"
	"testing"

	"github.com/craftlink/craftlink-backend/internal/domain"
	"github.com/craftlink/craftlink-backend/internal/infrastructure/realtime"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockMatchRepo struct {
	mock.Mock
}

func (m *mockMatchRepo) Create(ctx context.Context, match *domain.Match) error {
	args := m.Called(ctx, match)
	return args.Error(0)
}

func (m *mockMatchRepo) GetByID(ctx context.Context, id int) (*domain.Match, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Match), args.Error(1)
}

func (m *mockMatchRepo) GetByUsers(ctx context.Context, user1ID, user2ID int) (*domain.Match, error) {
	args := m.Called(ctx, user1ID, user2ID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Match), args.Error(1)
}

func (m *mockMatchRepo) GetActiveMatches(ctx context.Context, userID int) ([]*domain.Match, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Match), args.Error(1)
}

func (m *mockMatchRepo) UpdateStatus(ctx context.Context, id int, isActive bool) error {
	args := m.Called(ctx, id, isActive)
	return args.Error(0)
}

func (m *mockMatchRepo) UpdateIcebreakers(ctx context.Context, id int, icebreakers []string) error {
	args := m.Called(ctx, id, icebreakers)
	return args.Error(0)
}

func (m *mockMatchRepo) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

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

type mockConversationRepo struct {
	mock.Mock
}

func (m *mockConversationRepo) Create(ctx context.Context, conv *domain.Conversation) error {
	args := m.Called(ctx, conv)
	if args.Error(0) == nil {
		conv.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *mockConversationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Conversation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Conversation), args.Error(1)
}

func (m *mockConversationRepo) AddMember(ctx context.Context, conversationID uuid.UUID, creatorID int) error {
	args := m.Called(ctx, conversationID, creatorID)
	return args.Error(0)
}

func (m *mockConversationRepo) RemoveMember(ctx context.Context, conversationID uuid.UUID, creatorID int) error {
	args := m.Called(ctx, conversationID, creatorID)
	return args.Error(0)
}

func (m *mockConversationRepo) IsMember(ctx context.Context, conversationID uuid.UUID, creatorID int) (bool, error) {
	args := m.Called(ctx, conversationID, creatorID)
	return args.Bool(0), args.Error(1)
}

func (m *mockConversationRepo) GetMembers(ctx context.Context, conversationID uuid.UUID) ([]int, error) {
	args := m.Called(ctx, conversationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func (m *mockConversationRepo) CreateMessage(ctx context.Context, msg *domain.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *mockConversationRepo) GetMessages(ctx context.Context, conversationID uuid.UUID, limit, offset int) ([]*domain.Message, error) {
	args := m.Called(ctx, conversationID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Message), args.Error(1)
}

func (m *mockConversationRepo) TouchLastMessage(ctx context.Context, conversationID uuid.UUID) error {
	args := m.Called(ctx, conversationID)
	return args.Error(0)
}

type mockNotificationRepo struct {
	mock.Mock
}

func (m *mockNotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *mockNotificationRepo) GetForCreator(ctx context.Context, creatorID, limit, offset int) ([]*domain.Notification, error) {
	args := m.Called(ctx, creatorID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Notification), args.Error(1)
}

func (m *mockNotificationRepo) MarkRead(ctx context.Context, id, creatorID int) error {
	args := m.Called(ctx, id, creatorID)
	return args.Error(0)
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

type testMocks struct {
	matchRepo   *mockMatchRepo
	swipeRepo   *mockSwipeRepo
	convRepo    *mockConversationRepo
	notifRepo   *mockNotificationRepo
	profileRepo *mockProfileRepo
}

func newTestUseCase() (*UseCase, *testMocks) {
	m := &testMocks{
		matchRepo:   new(mockMatchRepo),
		swipeRepo:   new(mockSwipeRepo),
		convRepo:    new(mockConversationRepo),
		notifRepo:   new(mockNotificationRepo),
		profileRepo: new(mockProfileRepo),
	}
	// nil redis makes the publisher a no-op, nil gemini disables icebreakers
	uc := NewUseCase(
		m.matchRepo,
		m.swipeRepo,
		m.convRepo,
		m.notifRepo,
		m.profileRepo,
		realtime.NewPublisher(nil, zap.NewNop()),
		nil,
		zap.NewNop(),
	)
	return uc, m
}

func TestCheckAndCreateMatchOnFirstLike(t *testing.T) {
	uc, m := newTestUseCase()

	m.matchRepo.On("GetByUsers", mock.Anything, 1, 2).Return(nil, domain.ErrMatchNotFound).Once()
	m.swipeRepo.On("HasMutualLike", mock.Anything, 1, 2).Return(false, nil)
	m.convRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	m.convRepo.On("AddMember", mock.Anything, mock.Anything, 1).Return(nil)
	m.convRepo.On("AddMember", mock.Anything, mock.Anything, 2).Return(nil)
	m.matchRepo.On("Create", mock.Anything, mock.MatchedBy(func(match *domain.Match) bool {
		return match.User1ID == 1 && match.User2ID == 2 && !match.IsMutual && match.IsActive
	})).Return(nil)
	m.profileRepo.On("GetByCreatorID", mock.Anything, mock.Anything).Return(&domain.Profile{DisplayName: "Someone"}, nil)
	m.notifRepo.On("Create", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.Kind == domain.NotificationKindMatch
	})).Return(nil).Twice()

	match, err := uc.CheckAndCreateMatch(context.Background(), 1, 2)

	assert.NoError(t, err)
	assert.NotNil(t, match)
	assert.False(t, match.IsMutual, "a one-sided like still matches, recorded as non-mutual")
	assert.NotNil(t, match.ConversationID)
	m.matchRepo.AssertExpectations(t)
	m.convRepo.AssertExpectations(t)
	m.notifRepo.AssertExpectations(t)
}

func TestCheckAndCreateMatchRecordsMutuality(t *testing.T) {
	uc, m := newTestUseCase()

	m.matchRepo.On("GetByUsers", mock.Anything, 2, 1).Return(nil, domain.ErrMatchNotFound).Once()
	m.swipeRepo.On("HasMutualLike", mock.Anything, 2, 1).Return(true, nil)
	m.convRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	m.convRepo.On("AddMember", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	m.matchRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	m.profileRepo.On("GetByCreatorID", mock.Anything, mock.Anything).Return(nil, domain.ErrProfileNotFound)
	m.notifRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	match, err := uc.CheckAndCreateMatch(context.Background(), 2, 1)

	assert.NoError(t, err)
	assert.True(t, match.IsMutual)
}

func TestCheckAndCreateMatchIsIdempotent(t *testing.T) {
	uc, m := newTestUseCase()

	existing := &domain.Match{ID: 9, User1ID: 1, User2ID: 2, IsActive: true}
	m.matchRepo.On("GetByUsers", mock.Anything, 1, 2).Return(existing, nil)

	match, err := uc.CheckAndCreateMatch(context.Background(), 1, 2)

	assert.NoError(t, err)
	assert.Equal(t, existing, match)
	m.matchRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	m.convRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCheckAndCreateMatchConversationFailureAborts(t *testing.T) {
	uc, m := newTestUseCase()

	m.matchRepo.On("GetByUsers", mock.Anything, 1, 2).Return(nil, domain.ErrMatchNotFound).Once()
	m.swipeRepo.On("HasMutualLike", mock.Anything, 1, 2).Return(false, nil)
	m.convRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))

	match, err := uc.CheckAndCreateMatch(context.Background(), 1, 2)

	assert.Error(t, err)
	assert.Nil(t, match)
	m.matchRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	m.notifRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCheckAndCreateMatchLosingRaceReturnsWinner(t *testing.T) {
	uc, m := newTestUseCase()

	raced := &domain.Match{ID: 11, User1ID: 1, User2ID: 2}
	m.matchRepo.On("GetByUsers", mock.Anything, 1, 2).Return(nil, domain.ErrMatchNotFound).Once()
	m.matchRepo.On("GetByUsers", mock.Anything, 1, 2).Return(raced, nil).Once()
	m.swipeRepo.On("HasMutualLike", mock.Anything, 1, 2).Return(false, nil)
	m.convRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	m.convRepo.On("AddMember", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	m.matchRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("duplicate key"))

	match, err := uc.CheckAndCreateMatch(context.Background(), 1, 2)

	assert.NoError(t, err)
	assert.Equal(t, raced, match)
}

func TestUnmatchRemovesMembershipsAndMatch(t *testing.T) {
	uc, m := newTestUseCase()

	convID := uuid.New()
	m.matchRepo.On("GetByID", mock.Anything, 9).Return(&domain.Match{
		ID: 9, User1ID: 1, User2ID: 2, ConversationID: &convID,
	}, nil)
	m.convRepo.On("RemoveMember", mock.Anything, convID, 1).Return(nil)
	m.convRepo.On("RemoveMember", mock.Anything, convID, 2).Return(nil)
	m.matchRepo.On("Delete", mock.Anything, 9).Return(nil)

	err := uc.Unmatch(context.Background(), 1, 9)

	assert.NoError(t, err)
	m.convRepo.AssertExpectations(t)
	m.matchRepo.AssertExpectations(t)
}

func TestUnmatchRejectsNonParticipant(t *testing.T) {
	uc, m := newTestUseCase()

	m.matchRepo.On("GetByID", mock.Anything, 9).Return(&domain.Match{
		ID: 9, User1ID: 1, User2ID: 2,
	}, nil)

	err := uc.Unmatch(context.Background(), 99, 9)

	assert.ErrorIs(t, err, domain.ErrMatchNotFound)
	m.matchRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestGetMatchesAttachesOtherProfile(t *testing.T) {
	uc, m := newTestUseCase()

	m.matchRepo.On("GetActiveMatches", mock.Anything, 1).Return([]*domain.Match{
		{ID: 5, User1ID: 1, User2ID: 2},
	}, nil)
	m.profileRepo.On("GetByCreatorID", mock.Anything, 2).Return(&domain.Profile{CreatorID: 2, DisplayName: "Ben"}, nil)

	matches, err := uc.GetMatches(context.Background(), 1)

	assert.NoError(t, err)
	assert.Len(t, matches, 1)
	assert.Equal(t, "Ben", matches[0].OtherProfile.DisplayName)
}
