// Package http exposes the shop use cases over a JSON HTTP API built on echo.
package http

import (
	"context"
	"log/slog"
	"net/http"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Use case handlers the server depends on.
type (
	MemberRegistrar interface {
		Handle(ctx context.Context, cmd commands.RegisterMemberCommand) error
	}

	ItemRegistrar interface {
		Handle(ctx context.Context, cmd commands.RegisterItemCommand) error
	}

	OrderPlacer interface {
		Handle(ctx context.Context, cmd commands.PlaceOrderCommand) (kernel.UUID, error)
	}

	OrderCanceller interface {
		Handle(ctx context.Context, cmd commands.CancelOrderCommand) error
	}

	OrderSearcher interface {
		Handle(ctx context.Context, query queries.SearchOrdersQuery) ([]queries.SearchOrdersQueryResponse, error)
	}

	MemberLister interface {
		Handle(ctx context.Context, query queries.GetMembersQuery) ([]queries.GetMembersQueryResponse, error)
	}
)

// Server handles HTTP requests and coordinates between them and the
// application use cases.
type Server struct {
	// Command handlers
	registerMember MemberRegistrar
	registerItem   ItemRegistrar
	placeOrder     OrderPlacer
	cancelOrder    OrderCanceller

	// Query handlers
	searchOrders OrderSearcher
	listMembers  MemberLister

	defaultCurrency currency.Unit
	logger          *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
// defaultCurrency prices items registered without an explicit currency.
func NewServer(
	registerMember MemberRegistrar,
	registerItem ItemRegistrar,
	placeOrder OrderPlacer,
	cancelOrder OrderCanceller,
	searchOrders OrderSearcher,
	listMembers MemberLister,
	defaultCurrency currency.Unit,
	logger *slog.Logger,
) *Server {
	return &Server{
		registerMember:  registerMember,
		registerItem:    registerItem,
		placeOrder:      placeOrder,
		cancelOrder:     cancelOrder,
		searchOrders:    searchOrders,
		listMembers:     listMembers,
		defaultCurrency: defaultCurrency,
		logger:          logger.With("component", "http_server"),
	}
}

// RegisterMember handles POST /api/v1/members.
func (s *Server) RegisterMember(ctx echo.Context) error {
	var body NewMember
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	address, err := kernel.NewAddress(body.Address.City, body.Address.Street, body.Address.Zipcode)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewRegisterMemberCommand(kernel.NewUUID(), body.Name, address)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.registerMember.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: cmd.MemberID().String()})
}

// ListMembers handles GET /api/v1/members.
func (s *Server) ListMembers(ctx echo.Context) error {
	members, err := s.listMembers.Handle(ctx.Request().Context(), queries.NewGetMembersQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, lo.Map(members, toMember))
}

// RegisterItem handles POST /api/v1/items.
func (s *Server) RegisterItem(ctx echo.Context) error {
	var body NewItem
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	amount, err := decimal.NewFromString(body.Price)
	if err != nil {
		return s.badRequest(ctx, "Invalid price: "+body.Price)
	}

	cur := s.defaultCurrency
	if body.Currency != "" {
		if cur, err = kernel.ParseCurrency(body.Currency); err != nil {
			return s.fail(ctx, err)
		}
	}

	price, err := kernel.NewMoney(amount, cur)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewRegisterItemCommand(kernel.NewUUID(), body.Name, price, body.StockQuantity)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.registerItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: cmd.ItemID().String()})
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	memberID, err := kernel.UUIDFromString(body.MemberID)
	if err != nil {
		return s.fail(ctx, err)
	}
	itemID, err := kernel.UUIDFromString(body.ItemID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewPlaceOrderCommand(memberID, itemID, body.Count)
	if err != nil {
		return s.fail(ctx, err)
	}

	orderID, err := s.placeOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: orderID.String()})
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	var orderIDParam string
	err := runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderIDParam,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return s.badRequest(ctx, "Invalid format for parameter orderId: "+err.Error())
	}

	orderID, err := kernel.UUIDFromString(orderIDParam)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.cancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SearchOrders handles GET /api/v1/orders.
func (s *Server) SearchOrders(ctx echo.Context) error {
	var status, memberName *string

	if err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &status); err != nil {
		return s.badRequest(ctx, "Invalid format for parameter status: "+err.Error())
	}
	if err := runtime.BindQueryParameter("form", true, false, "memberName", ctx.QueryParams(), &memberName); err != nil {
		return s.badRequest(ctx, "Invalid format for parameter memberName: "+err.Error())
	}

	query, err := queries.NewSearchOrdersQuery(lo.FromPtr(status), lo.FromPtr(memberName))
	if err != nil {
		return s.fail(ctx, err)
	}

	orders, err := s.searchOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, lo.Map(orders, toOrder))
}

func (s *Server) badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// fail writes err as an Error body. Unexpected errors are logged and their
// details are not sent to the client.
func (s *Server) fail(ctx echo.Context, err error) error {
	code := statusOf(err)
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "Request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err)
		return ctx.JSON(code, Error{Code: code, Message: "Internal server error"})
	}

	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}
