package http

import (
	"bytes"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/fairdraw/sweepstakes/internal/draw"
	"github.com/fairdraw/sweepstakes/internal/models"
	"github.com/fairdraw/sweepstakes/internal/repositories/store"
	"github.com/fairdraw/sweepstakes/internal/services/sweepstake"
	svcMocks "github.com/fairdraw/sweepstakes/internal/services/sweepstake/mocks"
)

type HandlerTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	mockSvc  *svcMocks.MockService

	router *gin.Engine

	testTime time.Time
}

func (s *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.mockCtrl = gomock.NewController(s.T())
	s.mockSvc = svcMocks.NewMockService(s.mockCtrl)

	handler, err := New(&Config{SweepstakeService: s.mockSvc})
	s.Require().NoError(err)

	s.router = gin.New()
	handler.RegisterRoutes(s.router)

	s.testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func (s *HandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) request(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerTestSuite) newSweepstake() *models.Sweepstake {
	return &models.Sweepstake{
		ID:           "sweep-1",
		Title:        "Weekly Draw",
		Status:       models.SweepstakeStatusActive,
		EntryFee:     decimal.RequireFromString("10"),
		HouseFeeRate: decimal.RequireFromString("0.05"),
		StartTime:    s.testTime,
		EndTime:      s.testTime.Add(time.Hour),
		Participants: []*models.Participant{},
		CreatedAt:    s.testTime,
		UpdatedAt:    s.testTime,
	}
}

func (s *HandlerTestSuite) TestCreateSweepstake() {
	s.mockSvc.EXPECT().
		CreateSweepstake(gomock.Any(), gomock.Any()).
		Return(&sweepstake.CreateSweepstakeOutput{Sweepstake: s.newSweepstake()}, nil)

	rec := s.request(nethttp.MethodPost, "/api/sweepstakes", gin.H{
		"title":      "Weekly Draw",
		"entry_fee":  "10",
		"start_time": s.testTime,
		"end_time":   s.testTime.Add(time.Hour),
	})
	s.Equal(nethttp.StatusCreated, rec.Code)

	var resp sweepstakeResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("sweep-1", resp.ID)
	s.Equal("10", resp.EntryFee)
}

func (s *HandlerTestSuite) TestCreateSweepstakeRejectsBadFee() {
	rec := s.request(nethttp.MethodPost, "/api/sweepstakes", gin.H{
		"title":      "Weekly Draw",
		"entry_fee":  "not-a-number",
		"start_time": s.testTime,
		"end_time":   s.testTime.Add(time.Hour),
	})
	s.Equal(nethttp.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestCreateSweepstakeServiceValidation() {
	s.mockSvc.EXPECT().
		CreateSweepstake(gomock.Any(), gomock.Any()).
		Return(nil, sweepstake.ErrInvalidTimeWindow)

	rec := s.request(nethttp.MethodPost, "/api/sweepstakes", gin.H{
		"title":      "Backwards",
		"entry_fee":  "10",
		"start_time": s.testTime,
		"end_time":   s.testTime.Add(time.Hour),
	})
	s.Equal(nethttp.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestGetSweepstakeNotFound() {
	s.mockSvc.EXPECT().
		GetSweepstake(gomock.Any(), &sweepstake.GetSweepstakeInput{SweepstakeID: "missing"}).
		Return(nil, store.ErrSweepstakeNotFound)

	rec := s.request(nethttp.MethodGet, "/api/sweepstakes/missing", nil)
	s.Equal(nethttp.StatusNotFound, rec.Code)
}

func (s *HandlerTestSuite) TestListSweepstakesByStatus() {
	s.mockSvc.EXPECT().
		ListSweepstakes(gomock.Any(), &sweepstake.ListSweepstakesInput{Status: models.SweepstakeStatusActive}).
		Return(&sweepstake.ListSweepstakesOutput{Sweepstakes: []*models.Sweepstake{s.newSweepstake()}}, nil)

	rec := s.request(nethttp.MethodGet, "/api/sweepstakes?status=ACTIVE", nil)
	s.Equal(nethttp.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "sweep-1")
}

func (s *HandlerTestSuite) TestJoinSweepstake() {
	s.mockSvc.EXPECT().
		JoinSweepstake(gomock.Any(), &sweepstake.JoinSweepstakeInput{
			SweepstakeID: "sweep-1",
			UserID:       "user-1",
		}).
		Return(&sweepstake.JoinSweepstakeOutput{
			Sweepstake:    s.newSweepstake(),
			ParticipantID: "p-1",
		}, nil)

	rec := s.request(nethttp.MethodPost, "/api/sweepstakes/sweep-1/join", gin.H{"user_id": "user-1"})
	s.Equal(nethttp.StatusOK, rec.Code)

	var resp joinResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("p-1", resp.ParticipantID)
	s.False(resp.CapReached)
}

func (s *HandlerTestSuite) TestJoinSweepstakeRequiresUserID() {
	rec := s.request(nethttp.MethodPost, "/api/sweepstakes/sweep-1/join", gin.H{})
	s.Equal(nethttp.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestJoinSweepstakeInsufficientBalance() {
	s.mockSvc.EXPECT().
		JoinSweepstake(gomock.Any(), gomock.Any()).
		Return(nil, store.ErrInsufficientBalance)

	rec := s.request(nethttp.MethodPost, "/api/sweepstakes/sweep-1/join", gin.H{"user_id": "user-1"})
	s.Equal(nethttp.StatusPaymentRequired, rec.Code)
}

func (s *HandlerTestSuite) TestJoinSweepstakeDuplicate() {
	s.mockSvc.EXPECT().
		JoinSweepstake(gomock.Any(), gomock.Any()).
		Return(nil, store.ErrAlreadyJoined)

	rec := s.request(nethttp.MethodPost, "/api/sweepstakes/sweep-1/join", gin.H{"user_id": "user-1"})
	s.Equal(nethttp.StatusConflict, rec.Code)
}

func (s *HandlerTestSuite) TestLeaveSweepstake() {
	s.mockSvc.EXPECT().
		LeaveSweepstake(gomock.Any(), &sweepstake.LeaveSweepstakeInput{
			SweepstakeID: "sweep-1",
			UserID:       "user-1",
		}).
		Return(&sweepstake.LeaveSweepstakeOutput{Sweepstake: s.newSweepstake()}, nil)

	rec := s.request(nethttp.MethodPost, "/api/sweepstakes/sweep-1/leave", gin.H{"user_id": "user-1"})
	s.Equal(nethttp.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestCancelSweepstake() {
	s.mockSvc.EXPECT().
		CancelSweepstake(gomock.Any(), &sweepstake.CancelSweepstakeInput{
			SweepstakeID: "sweep-1",
			Reason:       "cancelled by operator",
		}).
		Return(&sweepstake.CancelSweepstakeOutput{
			Sweepstake:    s.newSweepstake(),
			RefundedCount: 2,
		}, nil)

	rec := s.request(nethttp.MethodPost, "/api/sweepstakes/sweep-1/cancel", gin.H{})
	s.Equal(nethttp.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"refunded_count":2`)
}

func (s *HandlerTestSuite) TestGetAuditReport() {
	s.mockSvc.EXPECT().
		GetAuditReport(gomock.Any(), &sweepstake.GetAuditReportInput{SweepstakeID: "sweep-1"}).
		Return(&sweepstake.GetAuditReportOutput{
			Report: &draw.Report{
				SweepstakeID: "sweep-1",
				Verified:     true,
				Algorithm:    draw.AlgorithmSHA256Mod32,
			},
		}, nil)

	rec := s.request(nethttp.MethodGet, "/api/sweepstakes/sweep-1/audit", nil)
	s.Equal(nethttp.StatusOK, rec.Code)

	var report draw.Report
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &report))
	s.True(report.Verified)
	s.Equal(draw.AlgorithmSHA256Mod32, report.Algorithm)
}

func (s *HandlerTestSuite) TestGetAuditReportBeforeFinish() {
	s.mockSvc.EXPECT().
		GetAuditReport(gomock.Any(), gomock.Any()).
		Return(nil, sweepstake.ErrNotFinished)

	rec := s.request(nethttp.MethodGet, "/api/sweepstakes/sweep-1/audit", nil)
	s.Equal(nethttp.StatusConflict, rec.Code)
}

func (s *HandlerTestSuite) TestCreateUser() {
	s.mockSvc.EXPECT().
		CreateUser(gomock.Any(), &sweepstake.CreateUserInput{
			Name:           "Alice",
			OpeningBalance: decimal.RequireFromString("100"),
		}).
		Return(&sweepstake.CreateUserOutput{
			User: &models.User{
				ID:      "user-1",
				Name:    "Alice",
				Balance: decimal.RequireFromString("100"),
			},
		}, nil)

	rec := s.request(nethttp.MethodPost, "/api/users", gin.H{
		"name":            "Alice",
		"opening_balance": "100",
	})
	s.Equal(nethttp.StatusCreated, rec.Code)
}

func (s *HandlerTestSuite) TestGetUser() {
	s.mockSvc.EXPECT().
		GetUser(gomock.Any(), &sweepstake.GetUserInput{UserID: "user-1"}).
		Return(&sweepstake.GetUserOutput{
			User: &models.User{
				ID:      "user-1",
				Name:    "Alice",
				Balance: decimal.RequireFromString("90"),
			},
			Transactions: []*models.Transaction{
				{
					ID:           "txn-1",
					UserID:       "user-1",
					SweepstakeID: "sweep-1",
					Type:         models.TransactionTypeEntryFee,
					Amount:       decimal.RequireFromString("10"),
					Timestamp:    s.testTime,
				},
			},
		}, nil)

	rec := s.request(nethttp.MethodGet, "/api/users/user-1", nil)
	s.Equal(nethttp.StatusOK, rec.Code)

	var resp userDetailResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("90", resp.User.Balance)
	s.Require().Len(resp.Transactions, 1)
	s.Equal("ENTRY_FEE", resp.Transactions[0].Type)
}
