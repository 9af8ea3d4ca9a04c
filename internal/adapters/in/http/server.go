package http

import (
	"errors"
	"net/http"

	"agrilink/internal/core/application/usecases/commands"
	"agrilink/internal/core/application/usecases/queries"
	"agrilink/internal/core/domain/model/account"
	"agrilink/internal/core/domain/model/dispatch"
	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/core/domain/model/lot"
	"agrilink/internal/core/domain/services"
	"agrilink/internal/generated/servers"
	"agrilink/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerAccountHandler  commands.RegisterAccountCommandHandler
	escalateRoleHandler     commands.EscalateRoleCommandHandler
	reportHarvestHandler    commands.ReportHarvestCommandHandler
	placeOfferHandler       commands.PlaceOfferCommandHandler
	setOfferActivityHandler commands.SetOfferActivityCommandHandler
	createDispatchHandler   commands.CreateDispatchCommandHandler
	advanceDeliveryHandler  commands.AdvanceDeliveryCommandHandler

	// Query handlers
	findMatchHandler        queries.FindMatchQueryHandler
	getPendingLotsHandler   queries.GetPendingLotsQueryHandler
	getActiveOffersHandler  queries.GetActiveOffersQueryHandler
	getDispatchOrderHandler queries.GetDispatchOrderQueryHandler
	getMarketFeedHandler    queries.GetMarketFeedQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerAccountHandler commands.RegisterAccountCommandHandler,
	escalateRoleHandler commands.EscalateRoleCommandHandler,
	reportHarvestHandler commands.ReportHarvestCommandHandler,
	placeOfferHandler commands.PlaceOfferCommandHandler,
	setOfferActivityHandler commands.SetOfferActivityCommandHandler,
	createDispatchHandler commands.CreateDispatchCommandHandler,
	advanceDeliveryHandler commands.AdvanceDeliveryCommandHandler,
	findMatchHandler queries.FindMatchQueryHandler,
	getPendingLotsHandler queries.GetPendingLotsQueryHandler,
	getActiveOffersHandler queries.GetActiveOffersQueryHandler,
	getDispatchOrderHandler queries.GetDispatchOrderQueryHandler,
	getMarketFeedHandler queries.GetMarketFeedQueryHandler,
) *Server {
	return &Server{
		registerAccountHandler:  registerAccountHandler,
		escalateRoleHandler:     escalateRoleHandler,
		reportHarvestHandler:    reportHarvestHandler,
		placeOfferHandler:       placeOfferHandler,
		setOfferActivityHandler: setOfferActivityHandler,
		createDispatchHandler:   createDispatchHandler,
		advanceDeliveryHandler:  advanceDeliveryHandler,
		findMatchHandler:        findMatchHandler,
		getPendingLotsHandler:   getPendingLotsHandler,
		getActiveOffersHandler:  getActiveOffersHandler,
		getDispatchOrderHandler: getDispatchOrderHandler,
		getMarketFeedHandler:    getMarketFeedHandler,
	}
}

// RegisterAccount handles POST /api/v1/accounts - registers a participant account.
func (s *Server) RegisterAccount(ctx echo.Context) error {
	var body servers.RegisterAccountJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	role, err := account.RoleFromString(string(body.Role))
	if err != nil {
		return badRequest(ctx, "Invalid account data: "+err.Error())
	}

	accountID := kernel.NewUUID()
	cmd, err := commands.NewRegisterAccountCommand(accountID, body.Handle, role)
	if err != nil {
		return badRequest(ctx, "Invalid account data: "+err.Error())
	}

	if handleErr := s.registerAccountHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		// The handle column is unique; a second registration with the same
		// handle surfaces here as a constraint violation.
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: "Failed to register account",
		})
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: accountID.Bytes()})
}

// EscalateRole handles POST /api/v1/accounts/{accountId}/role - changes an account's role.
func (s *Server) EscalateRole(ctx echo.Context, accountId openapi_types.UUID) error {
	var body servers.EscalateRoleJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	role, err := account.RoleFromString(string(body.Role))
	if err != nil {
		return badRequest(ctx, "Invalid role: "+err.Error())
	}

	actorID, err := kernel.UUIDFromBytes(body.ActorId[:])
	if err != nil {
		return badRequest(ctx, "Invalid actor identifier")
	}

	accountID, err := kernel.UUIDFromBytes(accountId[:])
	if err != nil {
		return badRequest(ctx, "Invalid account identifier")
	}

	cmd, err := commands.NewEscalateRoleCommand(actorID, accountID, role)
	if err != nil {
		return badRequest(ctx, "Invalid escalation data: "+err.Error())
	}

	if handleErr := s.escalateRoleHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReportHarvest handles POST /api/v1/lots - reports a harvest lot.
func (s *Server) ReportHarvest(ctx echo.Context) error {
	var body servers.ReportHarvestJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	producerID, err := kernel.UUIDFromBytes(body.ProducerId[:])
	if err != nil {
		return badRequest(ctx, "Invalid producer identifier")
	}

	lotID := kernel.NewUUID()
	cmd, err := commands.NewReportHarvestCommand(lotID, producerID, body.Commodity, body.Quantity, body.OriginCity)
	if err != nil {
		return badRequest(ctx, "Invalid lot data: "+err.Error())
	}

	if handleErr := s.reportHarvestHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: lotID.Bytes()})
}

// GetPendingLots handles GET /api/v1/lots/pending - lists lots awaiting a match.
func (s *Server) GetPendingLots(ctx echo.Context, params servers.GetPendingLotsParams) error {
	query := queries.NewGetPendingLotsQuery(stringValue(params.Commodity), stringValue(params.City))

	lots, err := s.getPendingLotsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve pending lots")
	}

	response := make([]servers.HarvestLot, len(lots))
	for i, l := range lots {
		response[i] = servers.HarvestLot{
			Id:         l.ID.Bytes(),
			ProducerId: l.ProducerID.Bytes(),
			Commodity:  l.Commodity,
			Quantity:   l.Quantity,
			OriginCity: l.OriginCity,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// FindMatch handles GET /api/v1/lots/{lotId}/match - runs the matching engine for a lot.
func (s *Server) FindMatch(ctx echo.Context, lotId openapi_types.UUID) error {
	lotID, err := kernel.UUIDFromBytes(lotId[:])
	if err != nil {
		return badRequest(ctx, "Invalid lot identifier")
	}

	query, err := queries.NewFindMatchQuery(lotID)
	if err != nil {
		return badRequest(ctx, "Invalid lot identifier")
	}

	match, err := s.findMatchHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Match{
		OfferId:         match.OfferID.Bytes(),
		BuyerId:         match.BuyerID.Bytes(),
		Price:           match.Price.String(),
		DestinationCity: match.Destination,
		DistanceProxy:   match.DistanceProxy,
	})
}

// PlaceOffer handles POST /api/v1/offers - places a standing buyer offer.
func (s *Server) PlaceOffer(ctx echo.Context) error {
	var body servers.PlaceOfferJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	buyerID, err := kernel.UUIDFromBytes(body.BuyerId[:])
	if err != nil {
		return badRequest(ctx, "Invalid buyer identifier")
	}

	price, err := kernel.ParseMoney(body.Price)
	if err != nil {
		return badRequest(ctx, "Invalid price: "+err.Error())
	}

	offerID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOfferCommand(offerID, buyerID, body.Commodities, body.DestinationCity, price)
	if err != nil {
		return badRequest(ctx, "Invalid offer data: "+err.Error())
	}

	if handleErr := s.placeOfferHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: offerID.Bytes()})
}

// GetActiveOffers handles GET /api/v1/offers/active - lists offers accepting matches.
func (s *Server) GetActiveOffers(ctx echo.Context, params servers.GetActiveOffersParams) error {
	query := queries.NewGetActiveOffersQuery(stringValue(params.Commodity))

	offers, err := s.getActiveOffersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve active offers")
	}

	response := make([]servers.Offer, len(offers))
	for i, o := range offers {
		response[i] = servers.Offer{
			Id:              o.ID.Bytes(),
			BuyerId:         o.BuyerID.Bytes(),
			Commodities:     o.Commodities,
			DestinationCity: o.DestinationCity,
			Price:           o.Price.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// SetOfferActivity handles PUT /api/v1/offers/{offerId}/activity - toggles an offer.
func (s *Server) SetOfferActivity(ctx echo.Context, offerId openapi_types.UUID) error {
	var body servers.SetOfferActivityJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	offerID, err := kernel.UUIDFromBytes(offerId[:])
	if err != nil {
		return badRequest(ctx, "Invalid offer identifier")
	}

	cmd, err := commands.NewSetOfferActivityCommand(offerID, body.Active)
	if err != nil {
		return badRequest(ctx, "Invalid activity data: "+err.Error())
	}

	if handleErr := s.setOfferActivityHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateDispatch handles POST /api/v1/dispatches - claims a lot and creates the order.
func (s *Server) CreateDispatch(ctx echo.Context) error {
	var body servers.CreateDispatchJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	lotID, err := kernel.UUIDFromBytes(body.LotId[:])
	if err != nil {
		return badRequest(ctx, "Invalid lot identifier")
	}

	offerID, err := kernel.UUIDFromBytes(body.OfferId[:])
	if err != nil {
		return badRequest(ctx, "Invalid offer identifier")
	}

	driverID, err := kernel.UUIDFromBytes(body.DriverId[:])
	if err != nil {
		return badRequest(ctx, "Invalid driver identifier")
	}

	transportCost, err := kernel.ParseMoney(body.TransportCost)
	if err != nil {
		return badRequest(ctx, "Invalid transport cost: "+err.Error())
	}

	cmd, err := commands.NewCreateDispatchCommand(kernel.NewUUID(), lotID, offerID, driverID, transportCost)
	if err != nil {
		return badRequest(ctx, "Invalid dispatch data: "+err.Error())
	}

	order, err := s.createDispatchHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.DispatchOrder{
		Id:            order.ID().Bytes(),
		LotId:         order.LotID().Bytes(),
		OfferId:       order.OfferID().Bytes(),
		DriverId:      order.DriverID().Bytes(),
		AgreedPrice:   order.AgreedPrice().String(),
		TransportCost: order.TransportCost().String(),
		PlatformFee:   order.PlatformFee().String(),
		Status:        servers.DispatchOrderStatus(order.Status().String()),
	})
}

// GetDispatchOrder handles GET /api/v1/dispatches/{orderId} - retrieves one order.
func (s *Server) GetDispatchOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order identifier")
	}

	query, err := queries.NewGetDispatchOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order identifier")
	}

	order, err := s.getDispatchOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.DispatchOrder{
		Id:            order.ID.Bytes(),
		LotId:         order.LotID.Bytes(),
		OfferId:       order.OfferID.Bytes(),
		DriverId:      order.DriverID.Bytes(),
		AgreedPrice:   order.AgreedPrice.String(),
		TransportCost: order.TransportCost.String(),
		PlatformFee:   order.PlatformFee.String(),
		Status:        servers.DispatchOrderStatus(order.Status),
	})
}

// ConcludeDispatch handles POST /api/v1/dispatches/{orderId}/conclusion - records the outcome.
func (s *Server) ConcludeDispatch(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.ConcludeDispatchJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order identifier")
	}

	outcome, err := dispatch.DeliveryStatusFromString(string(body.Outcome))
	if err != nil {
		return badRequest(ctx, "Invalid outcome: "+err.Error())
	}

	cmd, err := commands.NewAdvanceDeliveryCommand(orderID, outcome)
	if err != nil {
		return badRequest(ctx, "Invalid conclusion data: "+err.Error())
	}

	if handleErr := s.advanceDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetMarketFeed handles GET /api/v1/market/feed - the per-commodity snapshot.
func (s *Server) GetMarketFeed(ctx echo.Context) error {
	query := queries.NewGetMarketFeedQuery()

	feed, err := s.getMarketFeedHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve market feed")
	}

	response := make([]servers.MarketFeedEntry, len(feed))
	for i, entry := range feed {
		response[i] = servers.MarketFeedEntry{
			Commodity:       entry.Commodity,
			PendingLots:     entry.PendingLots,
			PendingQuantity: entry.PendingQuantity,
			ActiveOffers:    entry.ActiveOffers,
			TopPrice:        entry.TopPrice.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// domainError translates application and domain errors to HTTP status codes.
func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, services.ErrOfferNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, commands.ErrProducerRoleRequired),
		errors.Is(err, commands.ErrBuyerRoleRequired),
		errors.Is(err, commands.ErrDriverRoleRequired),
		errors.Is(err, account.ErrEscalationRequiresAdmin):
		return ctx.JSON(http.StatusForbidden, servers.Error{
			Code:    http.StatusForbidden,
			Message: err.Error(),
		})
	case errors.Is(err, commands.ErrLotAlreadyMatched),
		errors.Is(err, commands.ErrOfferNoLongerActive),
		errors.Is(err, lot.ErrInvalidLotState),
		errors.Is(err, dispatch.ErrInvalidDeliveryState):
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, servers.Error{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
