package domain

import "errors"

var (
	ErrCreatorNotFound      = errors.New("creator not found")
	ErrEmailTaken           = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidToken         = errors.New("invalid token")
	ErrSessionNotFound      = errors.New("session not found")
	ErrSessionExpired       = errors.New("session expired")
	ErrInvalidInput         = errors.New("invalid input")

	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("profile already exists")
	ErrHandleTaken          = errors.New("handle already taken")

	ErrCannotSwipeSelf    = errors.New("cannot swipe yourself")
	ErrSwipeAlreadyExists = errors.New("swipe already exists")
	ErrSwipeNotFound      = errors.New("swipe not found")

	ErrMatchNotFound = errors.New("match not found")

	ErrConversationNotFound  = errors.New("conversation not found")
	ErrNotConversationMember = errors.New("not a conversation member")

	ErrNotificationNotFound = errors.New("notification not found")

	ErrBlockNotFound = errors.New("block not found")

	ErrProjectNotFound          = errors.New("project not found")
	ErrProjectClosed            = errors.New("project is closed")
	ErrApplicationNotFound      = errors.New("application not found")
	ErrApplicationAlreadyExists = errors.New("application already exists")
	ErrNotProjectOwner          = errors.New("not the project owner")
)
