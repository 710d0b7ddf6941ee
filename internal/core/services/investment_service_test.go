package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/loretops/finalproject-LPS-sub000/internal/apperrors"
	"github.com/loretops/finalproject-LPS-sub000/internal/core/domain"
	portsrepo "github.com/loretops/finalproject-LPS-sub000/internal/core/ports/repositories"
	portssvc "github.com/loretops/finalproject-LPS-sub000/internal/core/ports/services"
	"github.com/loretops/finalproject-LPS-sub000/internal/core/services"
	"github.com/loretops/finalproject-LPS-sub000/internal/dto"
)

// --- Mock InvestmentRepository ---
type MockInvestmentRepository struct {
	mock.Mock
}

func (m *MockInvestmentRepository) SaveInvestment(ctx context.Context, investment domain.Investment) error {
	args := m.Called(ctx, investment)
	return args.Error(0)
}

func (m *MockInvestmentRepository) UpdateInvestmentStatus(ctx context.Context, investment domain.Investment, previousStatus domain.InvestmentStatus, fundingDelta decimal.Decimal) error {
	args := m.Called(ctx, investment, previousStatus, fundingDelta)
	return args.Error(0)
}

func (m *MockInvestmentRepository) FindInvestmentByID(ctx context.Context, investmentID string) (*domain.Investment, error) {
	args := m.Called(ctx, investmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Investment), args.Error(1)
}

func (m *MockInvestmentRepository) ListInvestments(ctx context.Context, filter portsrepo.InvestmentFilter) ([]domain.Investment, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Investment), args.Get(1).(int64), args.Error(2)
}

// --- Mock ProjectReader ---
type MockProjectReader struct {
	mock.Mock
}

func (m *MockProjectReader) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectReader) ListPublishedProjects(ctx context.Context, page, limit int) ([]domain.Project, int64, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Project), args.Get(1).(int64), args.Error(2)
}

// --- Mock UserWriter ---
type MockUserWriter struct {
	mock.Mock
}

func (m *MockUserWriter) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserWriter) RefreshActiveInvestorFlag(ctx context.Context, userID string, at time.Time) error {
	args := m.Called(ctx, userID, at)
	return args.Error(0)
}

// --- Mock Notifier ---
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) CreateNotification(ctx context.Context, n portssvc.NewNotification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

// --- Test Suite ---
type InvestmentServiceTestSuite struct {
	suite.Suite
	mockInvestmentRepo *MockInvestmentRepository
	mockProjectReader  *MockProjectReader
	mockUserWriter     *MockUserWriter
	mockNotifier       *MockNotifier
	service            portssvc.InvestmentSvcFacade

	investorID string
	ownerID    string
	project    *domain.Project
}

func (suite *InvestmentServiceTestSuite) SetupTest() {
	suite.mockInvestmentRepo = new(MockInvestmentRepository)
	suite.mockProjectReader = new(MockProjectReader)
	suite.mockUserWriter = new(MockUserWriter)
	suite.mockNotifier = new(MockNotifier)
	suite.service = services.NewInvestmentService(
		suite.mockInvestmentRepo,
		suite.mockProjectReader,
		suite.mockUserWriter,
		suite.mockNotifier,
	)

	suite.investorID = uuid.NewString()
	suite.ownerID = uuid.NewString()
	suite.project = &domain.Project{
		ProjectID:         uuid.NewString(),
		OwnerID:           suite.ownerID,
		Title:             "Riverside Apartments",
		MinimumInvestment: decimal.NewFromInt(1000),
		TargetAmount:      decimal.NewFromInt(100000),
		CurrentAmount:     decimal.Zero,
		Status:            domain.ProjectPublished,
		Draft:             false,
	}
}

// expectSideEffects lets the post-commit notification fan-out and the
// active-investor flag refresh succeed without pinning call counts.
func (suite *InvestmentServiceTestSuite) expectSideEffects() {
	suite.mockNotifier.On("CreateNotification", mock.Anything, mock.AnythingOfType("services.NewNotification")).Return(nil).Maybe()
	suite.mockUserWriter.On("RefreshActiveInvestorFlag", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).Return(nil).Maybe()
}

// --- CreateInvestment ---

func (suite *InvestmentServiceTestSuite) TestCreateInvestment_Success() {
	ctx := context.Background()
	req := dto.CreateInvestmentRequest{
		ProjectID: suite.project.ProjectID,
		Amount:    decimal.NewFromInt(2000),
		Notes:     "first round",
	}

	suite.mockProjectReader.On("FindProjectByID", ctx, suite.project.ProjectID).Return(suite.project, nil)
	suite.mockInvestmentRepo.On("SaveInvestment", ctx, mock.MatchedBy(func(inv domain.Investment) bool {
		return inv.UserID == suite.investorID &&
			inv.ProjectID == suite.project.ProjectID &&
			inv.Amount.Equal(req.Amount) &&
			inv.Status == domain.InvestmentPending &&
			inv.Notes == req.Notes &&
			inv.InvestmentID != ""
	})).Return(nil).Once()
	suite.expectSideEffects()

	investment, err := suite.service.CreateInvestment(ctx, suite.investorID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(investment)
	suite.Equal(domain.InvestmentPending, investment.Status)
	suite.True(investment.Amount.Equal(decimal.NewFromInt(2000)))
	suite.Equal(suite.investorID, investment.CreatedBy)
	suite.mockInvestmentRepo.AssertExpectations(suite.T())
}

func (suite *InvestmentServiceTestSuite) TestCreateInvestment_NotifiesOwnerAndInvestor() {
	ctx := context.Background()
	req := dto.CreateInvestmentRequest{ProjectID: suite.project.ProjectID, Amount: decimal.NewFromInt(5000)}

	suite.mockProjectReader.On("FindProjectByID", ctx, suite.project.ProjectID).Return(suite.project, nil)
	suite.mockInvestmentRepo.On("SaveInvestment", ctx, mock.AnythingOfType("domain.Investment")).Return(nil).Once()
	suite.mockNotifier.On("CreateNotification", ctx, mock.MatchedBy(func(n portssvc.NewNotification) bool {
		return n.UserID == suite.ownerID && n.Type == domain.NotificationNewInvestment
	})).Return(nil).Once()
	suite.mockNotifier.On("CreateNotification", ctx, mock.MatchedBy(func(n portssvc.NewNotification) bool {
		return n.UserID == suite.investorID && n.Type == domain.NotificationInvestmentMade
	})).Return(nil).Once()
	suite.mockUserWriter.On("RefreshActiveInvestorFlag", ctx, suite.investorID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	_, err := suite.service.CreateInvestment(ctx, suite.investorID, req)

	suite.Require().NoError(err)
	suite.mockNotifier.AssertExpectations(suite.T())
	suite.mockUserWriter.AssertExpectations(suite.T())
}

func (suite *InvestmentServiceTestSuite) TestCreateInvestment_BelowMinimum() {
	ctx := context.Background()
	req := dto.CreateInvestmentRequest{ProjectID: suite.project.ProjectID, Amount: decimal.NewFromInt(500)}

	suite.mockProjectReader.On("FindProjectByID", ctx, suite.project.ProjectID).Return(suite.project, nil)

	investment, err := suite.service.CreateInvestment(ctx, suite.investorID, req)

	suite.Require().Error(err)
	suite.Nil(investment)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "1000")
	suite.mockInvestmentRepo.AssertNotCalled(suite.T(), "SaveInvestment", mock.Anything, mock.Anything)
}

func (suite *InvestmentServiceTestSuite) TestCreateInvestment_AmountEqualToMinimumSucceeds() {
	ctx := context.Background()
	req := dto.CreateInvestmentRequest{ProjectID: suite.project.ProjectID, Amount: decimal.NewFromInt(1000)}

	suite.mockProjectReader.On("FindProjectByID", ctx, suite.project.ProjectID).Return(suite.project, nil)
	suite.mockInvestmentRepo.On("SaveInvestment", ctx, mock.AnythingOfType("domain.Investment")).Return(nil).Once()
	suite.expectSideEffects()

	_, err := suite.service.CreateInvestment(ctx, suite.investorID, req)

	suite.Require().NoError(err)
	suite.mockInvestmentRepo.AssertExpectations(suite.T())
}

func (suite *InvestmentServiceTestSuite) TestCreateInvestment_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateInvestmentRequest{ProjectID: suite.project.ProjectID, Amount: decimal.Zero}

	investment, err := suite.service.CreateInvestment(ctx, suite.investorID, req)

	suite.Require().Error(err)
	suite.Nil(investment)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockProjectReader.AssertNotCalled(suite.T(), "FindProjectByID", mock.Anything, mock.Anything)
}

func (suite *InvestmentServiceTestSuite) TestCreateInvestment_ProjectNotFound() {
	ctx := context.Background()
	projectID := uuid.NewString()
	req := dto.CreateInvestmentRequest{ProjectID: projectID, Amount: decimal.NewFromInt(2000)}

	suite.mockProjectReader.On("FindProjectByID", ctx, projectID).Return(nil, apperrors.ErrNotFound)

	investment, err := suite.service.CreateInvestment(ctx, suite.investorID, req)

	suite.Require().Error(err)
	suite.Nil(investment)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *InvestmentServiceTestSuite) TestCreateInvestment_ProjectNotAvailable() {
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(p *domain.Project)
	}{
		{"draft project", func(p *domain.Project) { p.Draft = true; p.Status = domain.ProjectDraft }},
		{"closed project", func(p *domain.Project) { p.Status = domain.ProjectClosed }},
		{"fully funded project", func(p *domain.Project) { p.CurrentAmount = p.TargetAmount; p.Status = domain.ProjectFunded }},
	}

	for _, tt := range tests {
		project := *suite.project
		tt.mutate(&project)

		reader := new(MockProjectReader)
		repo := new(MockInvestmentRepository)
		svc := services.NewInvestmentService(repo, reader, suite.mockUserWriter, suite.mockNotifier)

		reader.On("FindProjectByID", ctx, project.ProjectID).Return(&project, nil)

		req := dto.CreateInvestmentRequest{ProjectID: project.ProjectID, Amount: decimal.NewFromInt(2000)}
		investment, err := svc.CreateInvestment(ctx, suite.investorID, req)

		suite.Require().Error(err, tt.name)
		suite.Nil(investment, tt.name)
		suite.ErrorIs(err, apperrors.ErrValidation, tt.name)
		repo.AssertNotCalled(suite.T(), "SaveInvestment", mock.Anything, mock.Anything)
	}
}

func (suite *InvestmentServiceTestSuite) TestCreateInvestment_SaveError() {
	ctx := context.Background()
	req := dto.CreateInvestmentRequest{ProjectID: suite.project.ProjectID, Amount: decimal.NewFromInt(2000)}
	expectedErr := assert.AnError

	suite.mockProjectReader.On("FindProjectByID", ctx, suite.project.ProjectID).Return(suite.project, nil)
	suite.mockInvestmentRepo.On("SaveInvestment", ctx, mock.AnythingOfType("domain.Investment")).Return(expectedErr).Once()

	investment, err := suite.service.CreateInvestment(ctx, suite.investorID, req)

	suite.Require().Error(err)
	suite.Nil(investment)
	suite.ErrorIs(err, expectedErr)
	suite.mockNotifier.AssertNotCalled(suite.T(), "CreateNotification", mock.Anything, mock.Anything)
}

func (suite *InvestmentServiceTestSuite) TestCreateInvestment_SideEffectFailuresAreSwallowed() {
	ctx := context.Background()
	req := dto.CreateInvestmentRequest{ProjectID: suite.project.ProjectID, Amount: decimal.NewFromInt(2000)}

	suite.mockProjectReader.On("FindProjectByID", ctx, suite.project.ProjectID).Return(suite.project, nil)
	suite.mockInvestmentRepo.On("SaveInvestment", ctx, mock.AnythingOfType("domain.Investment")).Return(nil).Once()
	suite.mockNotifier.On("CreateNotification", ctx, mock.AnythingOfType("services.NewNotification")).Return(assert.AnError)
	suite.mockUserWriter.On("RefreshActiveInvestorFlag", ctx, suite.investorID, mock.AnythingOfType("time.Time")).Return(assert.AnError)

	investment, err := suite.service.CreateInvestment(ctx, suite.investorID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(investment)
	suite.Equal(domain.InvestmentPending, investment.Status)
}

// --- UpdateInvestmentStatus ---

func (suite *InvestmentServiceTestSuite) pendingInvestment(amount int64) *domain.Investment {
	return &domain.Investment{
		InvestmentID: uuid.NewString(),
		UserID:       suite.investorID,
		ProjectID:    suite.project.ProjectID,
		Amount:       decimal.NewFromInt(amount),
		Status:       domain.InvestmentPending,
		InvestedAt:   time.Now().UTC(),
	}
}

func (suite *InvestmentServiceTestSuite) TestUpdateInvestmentStatus_ConfirmAddsFunding() {
	ctx := context.Background()
	managerID := uuid.NewString()
	investment := suite.pendingInvestment(2000)
	contractRef := "CT-2026-001"
	req := dto.UpdateInvestmentStatusRequest{Status: "confirmed", ContractReference: &contractRef}

	suite.mockInvestmentRepo.On("FindInvestmentByID", ctx, investment.InvestmentID).Return(investment, nil)
	suite.mockInvestmentRepo.On("UpdateInvestmentStatus", ctx,
		mock.MatchedBy(func(inv domain.Investment) bool {
			return inv.Status == domain.InvestmentConfirmed &&
				inv.ContractReference == contractRef &&
				inv.LastUpdatedBy == managerID
		}),
		domain.InvestmentPending,
		mock.MatchedBy(func(delta decimal.Decimal) bool {
			return delta.Equal(decimal.NewFromInt(2000))
		}),
	).Return(nil).Once()
	suite.mockProjectReader.On("FindProjectByID", ctx, suite.project.ProjectID).Return(suite.project, nil).Maybe()
	suite.expectSideEffects()

	updated, err := suite.service.UpdateInvestmentStatus(ctx, investment.InvestmentID, req, managerID)

	suite.Require().NoError(err)
	suite.Equal(domain.InvestmentConfirmed, updated.Status)
	suite.Equal(contractRef, updated.ContractReference)
	suite.mockInvestmentRepo.AssertExpectations(suite.T())
}

func (suite *InvestmentServiceTestSuite) TestUpdateInvestmentStatus_CancelConfirmedSubtractsFunding() {
	ctx := context.Background()
	managerID := uuid.NewString()
	investment := suite.pendingInvestment(2000)
	investment.Status = domain.InvestmentConfirmed
	req := dto.UpdateInvestmentStatusRequest{Status: "canceled"}

	suite.mockInvestmentRepo.On("FindInvestmentByID", ctx, investment.InvestmentID).Return(investment, nil)
	suite.mockInvestmentRepo.On("UpdateInvestmentStatus", ctx,
		mock.MatchedBy(func(inv domain.Investment) bool { return inv.Status == domain.InvestmentCanceled }),
		domain.InvestmentConfirmed,
		mock.MatchedBy(func(delta decimal.Decimal) bool { return delta.Equal(decimal.NewFromInt(-2000)) }),
	).Return(nil).Once()
	suite.mockProjectReader.On("FindProjectByID", ctx, suite.project.ProjectID).Return(suite.project, nil).Maybe()
	suite.expectSideEffects()

	updated, err := suite.service.UpdateInvestmentStatus(ctx, investment.InvestmentID, req, managerID)

	suite.Require().NoError(err)
	suite.Equal(domain.InvestmentCanceled, updated.Status)
	suite.mockInvestmentRepo.AssertExpectations(suite.T())
}

func (suite *InvestmentServiceTestSuite) TestUpdateInvestmentStatus_CompleteKeepsFunding() {
	ctx := context.Background()
	managerID := uuid.NewString()
	investment := suite.pendingInvestment(2000)
	investment.Status = domain.InvestmentConfirmed
	req := dto.UpdateInvestmentStatusRequest{Status: "completed"}

	suite.mockInvestmentRepo.On("FindInvestmentByID", ctx, investment.InvestmentID).Return(investment, nil)
	suite.mockInvestmentRepo.On("UpdateInvestmentStatus", ctx,
		mock.MatchedBy(func(inv domain.Investment) bool { return inv.Status == domain.InvestmentCompleted }),
		domain.InvestmentConfirmed,
		mock.MatchedBy(func(delta decimal.Decimal) bool { return delta.IsZero() }),
	).Return(nil).Once()
	suite.mockProjectReader.On("FindProjectByID", ctx, suite.project.ProjectID).Return(suite.project, nil).Maybe()
	suite.expectSideEffects()

	_, err := suite.service.UpdateInvestmentStatus(ctx, investment.InvestmentID, req, managerID)

	suite.Require().NoError(err)
	suite.mockInvestmentRepo.AssertExpectations(suite.T())
}

func (suite *InvestmentServiceTestSuite) TestUpdateInvestmentStatus_RejectPendingNoFunding() {
	ctx := context.Background()
	managerID := uuid.NewString()
	investment := suite.pendingInvestment(2000)
	req := dto.UpdateInvestmentStatusRequest{Status: "rejected"}

	suite.mockInvestmentRepo.On("FindInvestmentByID", ctx, investment.InvestmentID).Return(investment, nil)
	suite.mockInvestmentRepo.On("UpdateInvestmentStatus", ctx,
		mock.AnythingOfType("domain.Investment"),
		domain.InvestmentPending,
		mock.MatchedBy(func(delta decimal.Decimal) bool { return delta.IsZero() }),
	).Return(nil).Once()
	suite.mockProjectReader.On("FindProjectByID", ctx, suite.project.ProjectID).Return(suite.project, nil).Maybe()
	suite.expectSideEffects()

	_, err := suite.service.UpdateInvestmentStatus(ctx, investment.InvestmentID, req, managerID)

	suite.Require().NoError(err)
	suite.mockInvestmentRepo.AssertExpectations(suite.T())
}

func (suite *InvestmentServiceTestSuite) TestUpdateInvestmentStatus_BritishSpellingNormalized() {
	ctx := context.Background()
	managerID := uuid.NewString()
	investment := suite.pendingInvestment(2000)
	req := dto.UpdateInvestmentStatusRequest{Status: "cancelled"}

	suite.mockInvestmentRepo.On("FindInvestmentByID", ctx, investment.InvestmentID).Return(investment, nil)
	suite.mockInvestmentRepo.On("UpdateInvestmentStatus", ctx,
		mock.MatchedBy(func(inv domain.Investment) bool { return inv.Status == domain.InvestmentCanceled }),
		domain.InvestmentPending,
		mock.AnythingOfType("decimal.Decimal"),
	).Return(nil).Once()
	suite.mockProjectReader.On("FindProjectByID", ctx, suite.project.ProjectID).Return(suite.project, nil).Maybe()
	suite.expectSideEffects()

	updated, err := suite.service.UpdateInvestmentStatus(ctx, investment.InvestmentID, req, managerID)

	suite.Require().NoError(err)
	suite.Equal(domain.InvestmentCanceled, updated.Status)
}

func (suite *InvestmentServiceTestSuite) TestUpdateInvestmentStatus_InvalidTransition() {
	ctx := context.Background()
	managerID := uuid.NewString()
	investment := suite.pendingInvestment(2000)
	investment.Status = domain.InvestmentRejected
	req := dto.UpdateInvestmentStatusRequest{Status: "confirmed"}

	suite.mockInvestmentRepo.On("FindInvestmentByID", ctx, investment.InvestmentID).Return(investment, nil)

	updated, err := suite.service.UpdateInvestmentStatus(ctx, investment.InvestmentID, req, managerID)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockInvestmentRepo.AssertNotCalled(suite.T(), "UpdateInvestmentStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvestmentServiceTestSuite) TestUpdateInvestmentStatus_UnknownStatus() {
	ctx := context.Background()
	req := dto.UpdateInvestmentStatusRequest{Status: "approved"}

	updated, err := suite.service.UpdateInvestmentStatus(ctx, uuid.NewString(), req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockInvestmentRepo.AssertNotCalled(suite.T(), "FindInvestmentByID", mock.Anything, mock.Anything)
}

func (suite *InvestmentServiceTestSuite) TestUpdateInvestmentStatus_NotFound() {
	ctx := context.Background()
	investmentID := uuid.NewString()
	req := dto.UpdateInvestmentStatusRequest{Status: "confirmed"}

	suite.mockInvestmentRepo.On("FindInvestmentByID", ctx, investmentID).Return(nil, apperrors.ErrNotFound)

	updated, err := suite.service.UpdateInvestmentStatus(ctx, investmentID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *InvestmentServiceTestSuite) TestUpdateInvestmentStatus_OmittedFieldsKeepStoredValues() {
	ctx := context.Background()
	managerID := uuid.NewString()
	investment := suite.pendingInvestment(2000)
	investment.Notes = "keep these notes"
	investment.ContractReference = "CT-KEEP"
	req := dto.UpdateInvestmentStatusRequest{Status: "confirmed"}

	suite.mockInvestmentRepo.On("FindInvestmentByID", ctx, investment.InvestmentID).Return(investment, nil)
	suite.mockInvestmentRepo.On("UpdateInvestmentStatus", ctx,
		mock.MatchedBy(func(inv domain.Investment) bool {
			return inv.Notes == "keep these notes" && inv.ContractReference == "CT-KEEP"
		}),
		domain.InvestmentPending,
		mock.AnythingOfType("decimal.Decimal"),
	).Return(nil).Once()
	suite.mockProjectReader.On("FindProjectByID", ctx, suite.project.ProjectID).Return(suite.project, nil).Maybe()
	suite.expectSideEffects()

	_, err := suite.service.UpdateInvestmentStatus(ctx, investment.InvestmentID, req, managerID)

	suite.Require().NoError(err)
	suite.mockInvestmentRepo.AssertExpectations(suite.T())
}

// Two managers confirm the same pending investment from the same stale read.
// The repository's guarded write accepts the first transition only; the loser
// must surface a conflict instead of applying the funding delta a second time.
func (suite *InvestmentServiceTestSuite) TestUpdateInvestmentStatus_ConcurrentConfirmAppliesFundingOnce() {
	ctx := context.Background()
	firstRead := suite.pendingInvestment(2000)
	secondRead := *firstRead // both callers observe the same pending snapshot
	req := dto.UpdateInvestmentStatusRequest{Status: "confirmed"}
	conflictErr := fmt.Errorf("%w: investment %s is confirmed, expected pending", apperrors.ErrInvalidState, firstRead.InvestmentID)

	suite.mockInvestmentRepo.On("FindInvestmentByID", ctx, firstRead.InvestmentID).Return(firstRead, nil).Once()
	suite.mockInvestmentRepo.On("FindInvestmentByID", ctx, firstRead.InvestmentID).Return(&secondRead, nil).Once()
	suite.mockInvestmentRepo.On("UpdateInvestmentStatus", ctx,
		mock.MatchedBy(func(inv domain.Investment) bool { return inv.Status == domain.InvestmentConfirmed }),
		domain.InvestmentPending,
		mock.MatchedBy(func(delta decimal.Decimal) bool { return delta.Equal(decimal.NewFromInt(2000)) }),
	).Return(nil).Once()
	suite.mockInvestmentRepo.On("UpdateInvestmentStatus", ctx,
		mock.AnythingOfType("domain.Investment"),
		domain.InvestmentPending,
		mock.AnythingOfType("decimal.Decimal"),
	).Return(conflictErr).Once()
	suite.mockProjectReader.On("FindProjectByID", ctx, suite.project.ProjectID).Return(suite.project, nil).Maybe()
	suite.expectSideEffects()

	first, firstErr := suite.service.UpdateInvestmentStatus(ctx, firstRead.InvestmentID, req, uuid.NewString())
	second, secondErr := suite.service.UpdateInvestmentStatus(ctx, firstRead.InvestmentID, req, uuid.NewString())

	suite.Require().NoError(firstErr)
	suite.Equal(domain.InvestmentConfirmed, first.Status)
	suite.Require().Error(secondErr)
	suite.Nil(second)
	suite.ErrorIs(secondErr, apperrors.ErrInvalidState)
	suite.mockInvestmentRepo.AssertExpectations(suite.T())
}

// --- CancelInvestment ---

func (suite *InvestmentServiceTestSuite) TestCancelInvestment_Success() {
	ctx := context.Background()
	investment := suite.pendingInvestment(2000)

	suite.mockInvestmentRepo.On("FindInvestmentByID", ctx, investment.InvestmentID).Return(investment, nil)
	suite.mockInvestmentRepo.On("UpdateInvestmentStatus", ctx,
		mock.MatchedBy(func(inv domain.Investment) bool {
			return inv.Status == domain.InvestmentCanceled && inv.LastUpdatedBy == suite.investorID
		}),
		domain.InvestmentPending,
		mock.MatchedBy(func(delta decimal.Decimal) bool { return delta.IsZero() }),
	).Return(nil).Once()
	suite.mockProjectReader.On("FindProjectByID", ctx, suite.project.ProjectID).Return(suite.project, nil).Maybe()
	suite.expectSideEffects()

	canceled, err := suite.service.CancelInvestment(ctx, investment.InvestmentID, suite.investorID)

	suite.Require().NoError(err)
	suite.Equal(domain.InvestmentCanceled, canceled.Status)
	suite.mockInvestmentRepo.AssertExpectations(suite.T())
}

func (suite *InvestmentServiceTestSuite) TestCancelInvestment_NotOwner() {
	ctx := context.Background()
	investment := suite.pendingInvestment(2000)

	suite.mockInvestmentRepo.On("FindInvestmentByID", ctx, investment.InvestmentID).Return(investment, nil)

	canceled, err := suite.service.CancelInvestment(ctx, investment.InvestmentID, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(canceled)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockInvestmentRepo.AssertNotCalled(suite.T(), "UpdateInvestmentStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvestmentServiceTestSuite) TestCancelInvestment_NotPending() {
	ctx := context.Background()
	investment := suite.pendingInvestment(2000)
	investment.Status = domain.InvestmentConfirmed

	suite.mockInvestmentRepo.On("FindInvestmentByID", ctx, investment.InvestmentID).Return(investment, nil)

	canceled, err := suite.service.CancelInvestment(ctx, investment.InvestmentID, suite.investorID)

	suite.Require().Error(err)
	suite.Nil(canceled)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.mockInvestmentRepo.AssertNotCalled(suite.T(), "UpdateInvestmentStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- Listings ---

func (suite *InvestmentServiceTestSuite) TestGetUserInvestments_BuildsFilterAndPagination() {
	ctx := context.Background()
	status := "confirmed"
	params := dto.ListInvestmentsParams{Status: &status, Page: 2, Limit: 20}
	confirmed := domain.InvestmentConfirmed

	investments := []domain.Investment{*suite.pendingInvestment(2000)}
	investments[0].Status = confirmed

	suite.mockInvestmentRepo.On("ListInvestments", ctx, portsrepo.InvestmentFilter{
		UserID: suite.investorID,
		Status: &confirmed,
		Page:   2,
		Limit:  20,
	}).Return(investments, int64(45), nil).Once()

	resp, err := suite.service.GetUserInvestments(ctx, suite.investorID, params)

	suite.Require().NoError(err)
	suite.Len(resp.Data, 1)
	suite.Equal(int64(45), resp.Pagination.Total)
	suite.Equal(2, resp.Pagination.Page)
	suite.Equal(3, resp.Pagination.TotalPages)
	suite.mockInvestmentRepo.AssertExpectations(suite.T())
}

func (suite *InvestmentServiceTestSuite) TestGetProjectInvestments_DefaultsPageAndLimit() {
	ctx := context.Background()
	projectID := suite.project.ProjectID

	suite.mockInvestmentRepo.On("ListInvestments", ctx, portsrepo.InvestmentFilter{
		ProjectID: projectID,
		Page:      1,
		Limit:     20,
	}).Return([]domain.Investment{}, int64(0), nil).Once()

	resp, err := suite.service.GetProjectInvestments(ctx, projectID, dto.ListInvestmentsParams{})

	suite.Require().NoError(err)
	suite.Empty(resp.Data)
	suite.Equal(0, resp.Pagination.TotalPages)
	suite.mockInvestmentRepo.AssertExpectations(suite.T())
}

func (suite *InvestmentServiceTestSuite) TestListInvestments_InvalidStatusFilter() {
	ctx := context.Background()
	status := "bogus"

	resp, err := suite.service.ListInvestments(ctx, dto.ListInvestmentsParams{Status: &status})

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockInvestmentRepo.AssertNotCalled(suite.T(), "ListInvestments", mock.Anything, mock.Anything)
}

func (suite *InvestmentServiceTestSuite) TestGetInvestmentByID_Passthrough() {
	ctx := context.Background()
	investment := suite.pendingInvestment(2000)

	suite.mockInvestmentRepo.On("FindInvestmentByID", ctx, investment.InvestmentID).Return(investment, nil).Once()

	found, err := suite.service.GetInvestmentByID(ctx, investment.InvestmentID)

	suite.Require().NoError(err)
	suite.Equal(investment, found)
}

func TestInvestmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvestmentServiceTestSuite))
}
