package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/loretops/finalproject-LPS-sub000/internal/apperrors"
	"github.com/loretops/finalproject-LPS-sub000/internal/core/domain"
	portssvc "github.com/loretops/finalproject-LPS-sub000/internal/core/ports/services"
	"github.com/loretops/finalproject-LPS-sub000/internal/core/services"
)

// --- Mock NotificationWriter ---
type MockNotificationWriter struct {
	mock.Mock
}

func (m *MockNotificationWriter) SaveNotification(ctx context.Context, n domain.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

// --- Test Suite ---
type NotificationServiceTestSuite struct {
	suite.Suite
	mockRepo *MockNotificationWriter
	service  portssvc.NotificationSvcFacade
}

func (suite *NotificationServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockNotificationWriter)
	suite.service = services.NewNotificationService(suite.mockRepo)
}

func (suite *NotificationServiceTestSuite) TestCreateNotification_Success() {
	ctx := context.Background()
	recipient := uuid.NewString()
	relatedID := uuid.NewString()

	suite.mockRepo.On("SaveNotification", ctx, mock.MatchedBy(func(n domain.Notification) bool {
		return n.UserID == recipient &&
			n.Type == domain.NotificationStatusChanged &&
			n.RelatedID == relatedID &&
			!n.Read &&
			n.NotificationID != ""
	})).Return(nil).Once()

	err := suite.service.CreateNotification(ctx, portssvc.NewNotification{
		UserID:    recipient,
		Type:      domain.NotificationStatusChanged,
		Content:   "Investment is now confirmed",
		RelatedID: relatedID,
	})

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *NotificationServiceTestSuite) TestCreateNotification_MissingRecipient() {
	ctx := context.Background()

	err := suite.service.CreateNotification(ctx, portssvc.NewNotification{
		Type:    domain.NotificationStatusChanged,
		Content: "orphan",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveNotification", mock.Anything, mock.Anything)
}

func (suite *NotificationServiceTestSuite) TestCreateNotification_MissingType() {
	ctx := context.Background()

	err := suite.service.CreateNotification(ctx, portssvc.NewNotification{
		UserID:  uuid.NewString(),
		Content: "untyped",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveNotification", mock.Anything, mock.Anything)
}

func TestNotificationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationServiceTestSuite))
}
