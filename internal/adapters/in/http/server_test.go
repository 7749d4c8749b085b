package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpadapter "shop/internal/adapters/in/http"
	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/member"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/text/currency"
)

type MockMemberRegistrar struct{ mock.Mock }

func (m *MockMemberRegistrar) Handle(ctx context.Context, cmd commands.RegisterMemberCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockItemRegistrar struct{ mock.Mock }

func (m *MockItemRegistrar) Handle(ctx context.Context, cmd commands.RegisterItemCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockOrderPlacer struct{ mock.Mock }

func (m *MockOrderPlacer) Handle(ctx context.Context, cmd commands.PlaceOrderCommand) (kernel.UUID, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(kernel.UUID), args.Error(1)
}

type MockOrderCanceller struct{ mock.Mock }

func (m *MockOrderCanceller) Handle(ctx context.Context, cmd commands.CancelOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockOrderSearcher struct{ mock.Mock }

func (m *MockOrderSearcher) Handle(
	ctx context.Context,
	query queries.SearchOrdersQuery,
) ([]queries.SearchOrdersQueryResponse, error) {
	args := m.Called(ctx, query)
	if result := args.Get(0); result != nil {
		return result.([]queries.SearchOrdersQueryResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockMemberLister struct{ mock.Mock }

func (m *MockMemberLister) Handle(
	ctx context.Context,
	query queries.GetMembersQuery,
) ([]queries.GetMembersQueryResponse, error) {
	args := m.Called(ctx, query)
	if result := args.Get(0); result != nil {
		return result.([]queries.GetMembersQueryResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

type ServerTestSuite struct {
	suite.Suite
	registerMember *MockMemberRegistrar
	registerItem   *MockItemRegistrar
	placeOrder     *MockOrderPlacer
	cancelOrder    *MockOrderCanceller
	searchOrders   *MockOrderSearcher
	listMembers    *MockMemberLister
	router         *echo.Echo
}

func (suite *ServerTestSuite) SetupTest() {
	suite.registerMember = new(MockMemberRegistrar)
	suite.registerItem = new(MockItemRegistrar)
	suite.placeOrder = new(MockOrderPlacer)
	suite.cancelOrder = new(MockOrderCanceller)
	suite.searchOrders = new(MockOrderSearcher)
	suite.listMembers = new(MockMemberLister)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	server := httpadapter.NewServer(
		suite.registerMember,
		suite.registerItem,
		suite.placeOrder,
		suite.cancelOrder,
		suite.searchOrders,
		suite.listMembers,
		currency.KRW,
		logger,
	)

	router, err := httpadapter.NewRouter(server, logger)
	suite.Require().NoError(err)
	suite.router = router
}

func (suite *ServerTestSuite) TearDownTest() {
	suite.registerMember.AssertExpectations(suite.T())
	suite.registerItem.AssertExpectations(suite.T())
	suite.placeOrder.AssertExpectations(suite.T())
	suite.cancelOrder.AssertExpectations(suite.T())
	suite.searchOrders.AssertExpectations(suite.T())
	suite.listMembers.AssertExpectations(suite.T())
}

func (suite *ServerTestSuite) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)
	return rec
}

func (suite *ServerTestSuite) decodeError(rec *httptest.ResponseRecorder) httpadapter.Error {
	var body httpadapter.Error
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func (suite *ServerTestSuite) TestHealth() {
	rec := suite.do(http.MethodGet, "/health", "")

	suite.Equal(http.StatusOK, rec.Code)
	suite.Equal("Healthy", rec.Body.String())
}

func (suite *ServerTestSuite) TestSwaggerDoc() {
	rec := suite.do(http.MethodGet, "/swagger/doc.json", "")

	suite.Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), `"/api/v1/orders"`)
}

func (suite *ServerTestSuite) TestRegisterMember_Created() {
	suite.registerMember.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.RegisterMemberCommand) bool {
		return cmd.Name() == "kim" && cmd.Address().City() == "Seoul"
	})).Return(nil).Once()

	rec := suite.do(http.MethodPost, "/api/v1/members",
		`{"name":"kim","address":{"city":"Seoul","street":"Teheran-ro 1","zipcode":"06236"}}`)

	suite.Require().Equal(http.StatusCreated, rec.Code)
	var created httpadapter.Created
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &created))
	_, err := kernel.UUIDFromString(created.ID)
	suite.NoError(err)
}

func (suite *ServerTestSuite) TestRegisterMember_MissingAddressRejectedByValidator() {
	rec := suite.do(http.MethodPost, "/api/v1/members", `{"name":"kim"}`)

	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.registerMember.AssertNotCalled(suite.T(), "Handle", mock.Anything, mock.Anything)
}

func (suite *ServerTestSuite) TestRegisterMember_Duplicate() {
	suite.registerMember.On("Handle", mock.Anything, mock.Anything).
		Return(member.ErrMemberAlreadyExists).Once()

	rec := suite.do(http.MethodPost, "/api/v1/members",
		`{"name":"kim","address":{"city":"Seoul","street":"Teheran-ro 1","zipcode":"06236"}}`)

	suite.Equal(http.StatusConflict, rec.Code)
	suite.Equal(http.StatusConflict, suite.decodeError(rec).Code)
}

func (suite *ServerTestSuite) TestListMembers() {
	address, err := kernel.NewAddress("Seoul", "Teheran-ro 1", "06236")
	suite.Require().NoError(err)
	id := kernel.NewUUID()
	suite.listMembers.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetMembersQuery) bool {
		return q.Validate() == nil
	})).Return([]queries.GetMembersQueryResponse{{ID: id, Name: "kim", Address: address}}, nil).Once()

	rec := suite.do(http.MethodGet, "/api/v1/members", "")

	suite.Require().Equal(http.StatusOK, rec.Code)
	var body []httpadapter.Member
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	suite.Equal([]httpadapter.Member{{
		ID:      id.String(),
		Name:    "kim",
		Address: httpadapter.Address{City: "Seoul", Street: "Teheran-ro 1", Zipcode: "06236"},
	}}, body)
}

func (suite *ServerTestSuite) TestListMembers_EmptyIsArray() {
	suite.listMembers.On("Handle", mock.Anything, mock.Anything).
		Return([]queries.GetMembersQueryResponse{}, nil).Once()

	rec := suite.do(http.MethodGet, "/api/v1/members", "")

	suite.Equal(http.StatusOK, rec.Code)
	suite.JSONEq(`[]`, rec.Body.String())
}

func (suite *ServerTestSuite) TestListMembers_StorageFailureIsHidden() {
	suite.listMembers.On("Handle", mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused")).Once()

	rec := suite.do(http.MethodGet, "/api/v1/members", "")

	suite.Equal(http.StatusInternalServerError, rec.Code)
	suite.Equal("Internal server error", suite.decodeError(rec).Message)
}

func (suite *ServerTestSuite) TestRegisterItem_DefaultCurrency() {
	suite.registerItem.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.RegisterItemCommand) bool {
		return cmd.Name() == "Book" &&
			cmd.Price().Currency() == currency.KRW &&
			cmd.Price().Amount().Equal(decimal.NewFromInt(10000)) &&
			cmd.StockQuantity() == 10
	})).Return(nil).Once()

	rec := suite.do(http.MethodPost, "/api/v1/items", `{"name":"Book","price":"10000","stockQuantity":10}`)

	suite.Equal(http.StatusCreated, rec.Code)
}

func (suite *ServerTestSuite) TestRegisterItem_NegativeStockRejectedByValidator() {
	rec := suite.do(http.MethodPost, "/api/v1/items", `{"name":"Book","price":"10000","stockQuantity":-1}`)

	suite.Equal(http.StatusBadRequest, rec.Code)
}

func (suite *ServerTestSuite) TestRegisterItem_UnknownCurrency() {
	rec := suite.do(http.MethodPost, "/api/v1/items",
		`{"name":"Book","price":"10000","currency":"ZZZ","stockQuantity":1}`)

	suite.Equal(http.StatusBadRequest, rec.Code)
}

func (suite *ServerTestSuite) TestPlaceOrder_Created() {
	memberID, itemID, orderID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	suite.placeOrder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.PlaceOrderCommand) bool {
		return cmd.MemberID().IsEqual(memberID) && cmd.ItemID().IsEqual(itemID) && cmd.Count() == 2
	})).Return(orderID, nil).Once()

	rec := suite.do(http.MethodPost, "/api/v1/orders",
		`{"memberId":"`+memberID.String()+`","itemId":"`+itemID.String()+`","count":2}`)

	suite.Require().Equal(http.StatusCreated, rec.Code)
	var created httpadapter.Created
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &created))
	suite.Equal(orderID.String(), created.ID)
}

func (suite *ServerTestSuite) TestPlaceOrder_ErrorMapping() {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"member not found", errs.NewObjectNotFoundError("member", "x"), http.StatusNotFound},
		{"insufficient stock", &item.InsufficientStockError{Requested: 5, Available: 1}, http.StatusConflict},
		{"empty order", order.ErrEmptyOrder, http.StatusBadRequest},
		{"database down", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.placeOrder.On("Handle", mock.Anything, mock.Anything).
				Return(kernel.UUID{}, tt.err).Once()

			rec := suite.do(http.MethodPost, "/api/v1/orders",
				`{"memberId":"`+kernel.NewUUID().String()+`","itemId":"`+kernel.NewUUID().String()+`","count":5}`)

			suite.Equal(tt.code, rec.Code)
			if tt.code == http.StatusInternalServerError {
				suite.NotContains(rec.Body.String(), "connection refused")
			}
		})
	}
}

func (suite *ServerTestSuite) TestPlaceOrder_ZeroCountRejectedByValidator() {
	rec := suite.do(http.MethodPost, "/api/v1/orders",
		`{"memberId":"`+kernel.NewUUID().String()+`","itemId":"`+kernel.NewUUID().String()+`","count":0}`)

	suite.Equal(http.StatusBadRequest, rec.Code)
}

func (suite *ServerTestSuite) TestCancelOrder_NoContent() {
	orderID := kernel.NewUUID()
	suite.cancelOrder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CancelOrderCommand) bool {
		return cmd.OrderID().IsEqual(orderID)
	})).Return(nil).Once()

	rec := suite.do(http.MethodPost, "/api/v1/orders/"+orderID.String()+"/cancel", "")

	suite.Equal(http.StatusNoContent, rec.Code)
}

func (suite *ServerTestSuite) TestCancelOrder_AlreadyCancelled() {
	suite.cancelOrder.On("Handle", mock.Anything, mock.Anything).
		Return(errs.NewIllegalStateError("order", "CANCEL")).Once()

	rec := suite.do(http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/cancel", "")

	suite.Equal(http.StatusConflict, rec.Code)
	suite.Contains(suite.decodeError(rec).Message, "CANCEL")
}

func (suite *ServerTestSuite) TestCancelOrder_NotFound() {
	suite.cancelOrder.On("Handle", mock.Anything, mock.Anything).
		Return(errs.NewObjectNotFoundError("order", "x")).Once()

	rec := suite.do(http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/cancel", "")

	suite.Equal(http.StatusNotFound, rec.Code)
}

func (suite *ServerTestSuite) TestCancelOrder_InvalidID() {
	rec := suite.do(http.MethodPost, "/api/v1/orders/not-a-uuid/cancel", "")

	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.cancelOrder.AssertNotCalled(suite.T(), "Handle", mock.Anything, mock.Anything)
}

func (suite *ServerTestSuite) TestSearchOrders() {
	orderedAt := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	address, err := kernel.NewAddress("Seoul", "Teheran-ro 1", "06236")
	suite.Require().NoError(err)
	price, err := kernel.NewMoney(decimal.NewFromInt(10000), currency.KRW)
	suite.Require().NoError(err)
	total, err := price.Multiply(2)
	suite.Require().NoError(err)
	id := kernel.NewUUID()

	suite.searchOrders.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.SearchOrdersQuery) bool {
		return q.Status() == order.Ordered && q.MemberName() == "kim"
	})).Return([]queries.SearchOrdersQueryResponse{{
		ID:             id,
		MemberName:     "kim",
		Status:         order.Ordered,
		OrderedAt:      orderedAt,
		DeliveryStatus: order.DeliveryReady,
		Address:        address,
		TotalPrice:     total,
		Lines: []queries.SearchOrdersQueryLine{{
			ItemName:   "Book",
			OrderPrice: price,
			Count:      2,
		}},
	}}, nil).Once()

	rec := suite.do(http.MethodGet, "/api/v1/orders?status=ORDER&memberName=kim", "")

	suite.Require().Equal(http.StatusOK, rec.Code)
	var body []httpadapter.Order
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	suite.Require().Len(body, 1)
	suite.Equal(httpadapter.Order{
		ID:             id.String(),
		MemberName:     "kim",
		Status:         "ORDER",
		OrderedAt:      orderedAt,
		DeliveryStatus: "READY",
		Address:        httpadapter.Address{City: "Seoul", Street: "Teheran-ro 1", Zipcode: "06236"},
		TotalPrice:     "20000",
		Currency:       "KRW",
		Lines:          []httpadapter.OrderLine{{ItemName: "Book", OrderPrice: "10000", Count: 2}},
	}, body[0])
}

func (suite *ServerTestSuite) TestSearchOrders_EmptyIsArray() {
	suite.searchOrders.On("Handle", mock.Anything, mock.Anything).
		Return([]queries.SearchOrdersQueryResponse{}, nil).Once()

	rec := suite.do(http.MethodGet, "/api/v1/orders", "")

	suite.Equal(http.StatusOK, rec.Code)
	suite.JSONEq(`[]`, rec.Body.String())
}

func (suite *ServerTestSuite) TestSearchOrders_UnknownStatusRejectedByValidator() {
	rec := suite.do(http.MethodGet, "/api/v1/orders?status=SHIPPED", "")

	suite.Equal(http.StatusBadRequest, rec.Code)
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}
