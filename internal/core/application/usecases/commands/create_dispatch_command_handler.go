package commands

import (
	"context"
	"errors"
	"fmt"

	"agrilink/internal/core/domain/model/account"
	"agrilink/internal/core/domain/model/dispatch"
	"agrilink/internal/core/domain/model/lot"
	"agrilink/internal/core/ports"
	"agrilink/internal/pkg/errs"
)

var (
	// ErrLotAlreadyMatched is returned when the lot was claimed by another
	// dispatch between read and commit. The matching result that produced this
	// command is stale; re-run matching against a fresh lot.
	ErrLotAlreadyMatched = errors.New("harvest lot is already claimed by another dispatch")

	// ErrOfferNoLongerActive is returned when the offer was deactivated between
	// selection and commit. No dispatch is created.
	ErrOfferNoLongerActive = errors.New("buyer offer is no longer active")

	// ErrDriverRoleRequired is returned when the assigned account exists but
	// does not hold the driver role.
	ErrDriverRoleRequired = errors.New("dispatch orders can only be assigned to driver accounts")
)

// CreateDispatchCommandHandler handles turning a match into a dispatch order.
//
// The lot claim is a compare-and-swap on the lot status inside the same
// transaction that inserts the order. When two dispatches race for one lot,
// exactly one swap succeeds; the loser gets ErrLotAlreadyMatched and nothing
// else it wrote survives the rollback. The offer's active flag is re-checked
// here, not trusted from whatever selection happened before the command was
// issued.
type CreateDispatchCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewCreateDispatchCommandHandler creates a handler for dispatch creation.
func NewCreateDispatchCommandHandler(uowFactory DispatchUoWFactory) CreateDispatchCommandHandler {
	return CreateDispatchCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dispatch creation command and returns the created
// order, including the agreed price snapshot and the derived platform fee.
func (h CreateDispatchCommandHandler) Handle(
	ctx context.Context, cmd CreateDispatchCommand,
) (*dispatch.DispatchOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	claimedLot, err := uow.LotRepository().Get(ctx, cmd.LotID())
	if err != nil {
		return nil, err
	}
	if err = claimedLot.ValidateMatch(); err != nil {
		if errors.Is(err, lot.ErrInvalidLotState) && claimedLot.Status() == lot.Matched {
			return nil, ErrLotAlreadyMatched
		}
		return nil, err
	}

	claimingOffer, err := uow.OfferRepository().Get(ctx, cmd.OfferID())
	if err != nil {
		return nil, err
	}
	if !claimingOffer.IsActive() {
		return nil, ErrOfferNoLongerActive
	}
	if !claimingOffer.Accepts(claimedLot.Commodity()) {
		return nil, errs.NewValueIsInvalidErrorWithCause("offerID",
			fmt.Errorf("offer does not accept commodity %q", claimedLot.Commodity()))
	}

	driver, err := uow.AccountRepository().Get(ctx, cmd.DriverID())
	if err != nil {
		return nil, err
	}
	if driver.Role() != account.Driver {
		return nil, ErrDriverRoleRequired
	}

	order, err := dispatch.NewDispatchOrder(
		cmd.OrderID(),
		claimedLot.ID(),
		claimingOffer.ID(),
		driver.ID(),
		claimingOffer.Price(),
		cmd.TransportCost(),
	)
	if err != nil {
		return nil, err
	}

	// The claim itself. Everything above was advisory; the store decides who
	// gets the lot.
	err = uow.LotRepository().CompareAndSwapStatus(ctx, claimedLot.ID(), lot.Pending, lot.Matched)
	if err != nil {
		if errors.Is(err, ports.ErrStatusConflict) {
			return nil, ErrLotAlreadyMatched
		}
		return nil, err
	}

	if err = uow.DispatchRepository().Add(ctx, order); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return order, nil
}
