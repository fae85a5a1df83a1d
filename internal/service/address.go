package service

import (
	"context"
	"log/slog"

	"github.com/petshop/checkout-service/internal/entities"
	"github.com/petshop/checkout-service/pkg/trm"
)

type addressService struct {
	logger    *slog.Logger
	txManager trm.Manager
	addresses AddressRepo
}

func NewAddressService(logger *slog.Logger, txManager trm.Manager, addresses AddressRepo) *addressService {
	return &addressService{
		logger:    logger.With(slog.String("service", "address")),
		txManager: txManager,
		addresses: addresses,
	}
}

func (s *addressService) ListAddresses(ctx context.Context, actor entities.User) ([]entities.Address, error) {
	if err := requireCustomer(actor); err != nil {
		return nil, err
	}
	return s.addresses.ListByCustomer(ctx, actor.ID)
}

func (s *addressService) GetAddress(ctx context.Context, actor entities.User, addressID int64) (entities.Address, error) {
	if err := requireCustomer(actor); err != nil {
		return entities.Address{}, err
	}
	return s.addresses.GetByIDAndCustomer(ctx, addressID, actor.ID)
}

// CreateAddress stores a new shipping address; the customer's first active
// address automatically becomes the primary one.
func (s *addressService) CreateAddress(ctx context.Context, actor entities.User, address entities.Address) (entities.Address, error) {
	if err := requireCustomer(actor); err != nil {
		return entities.Address{}, err
	}

	var created entities.Address
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		address.CustomerID = actor.ID
		address.Active = true

		count, err := s.addresses.CountActive(ctx, actor.ID)
		if err != nil {
			return err
		}
		address.Primary = count == 0

		created, err = s.addresses.Create(ctx, address)
		return err
	})
	if err != nil {
		return entities.Address{}, err
	}

	s.logger.InfoContext(ctx, "address created",
		slog.Int64("customer_id", actor.ID),
		slog.Int64("address_id", created.ID),
	)
	return created, nil
}

func (s *addressService) UpdateAddress(ctx context.Context, actor entities.User, address entities.Address) (entities.Address, error) {
	if err := requireCustomer(actor); err != nil {
		return entities.Address{}, err
	}

	var updated entities.Address
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		address.CustomerID = actor.ID
		if err := s.addresses.Update(ctx, address); err != nil {
			return err
		}
		var err error
		updated, err = s.addresses.GetByIDAndCustomer(ctx, address.ID, actor.ID)
		return err
	})
	return updated, err
}

// DeleteAddress soft-deletes: sales created against the address keep a
// valid reference.
func (s *addressService) DeleteAddress(ctx context.Context, actor entities.User, addressID int64) error {
	if err := requireCustomer(actor); err != nil {
		return err
	}
	return s.addresses.SoftDelete(ctx, addressID, actor.ID)
}

// SetPrimaryAddress keeps at most one primary per customer by unsetting
// all flags before setting the requested one, inside one transaction.
func (s *addressService) SetPrimaryAddress(ctx context.Context, actor entities.User, addressID int64) (entities.Address, error) {
	if err := requireCustomer(actor); err != nil {
		return entities.Address{}, err
	}

	var updated entities.Address
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := s.addresses.GetByIDAndCustomer(ctx, addressID, actor.ID); err != nil {
			return err
		}
		if err := s.addresses.UnsetPrimary(ctx, actor.ID); err != nil {
			return err
		}
		if err := s.addresses.SetPrimary(ctx, addressID, actor.ID); err != nil {
			return err
		}
		var err error
		updated, err = s.addresses.GetByIDAndCustomer(ctx, addressID, actor.ID)
		return err
	})
	return updated, err
}
