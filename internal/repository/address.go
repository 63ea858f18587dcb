package repository

import (
	"context"
	"log/slog"

	entaddress "github.com/huisbeheer/utility-tracker/gen/ent/address"

	"github.com/huisbeheer/utility-tracker/gen/ent"
	"github.com/huisbeheer/utility-tracker/internal/entity"
	"github.com/huisbeheer/utility-tracker/internal/utils"
)

type AddressRepository interface {
	// Ensure registers an address if it is not already known and returns
	// the stored row either way.
	Ensure(ctx context.Context, name string) (*entity.Address, error)
	List(ctx context.Context) ([]*entity.Address, error)
}

type addressRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewAddressRepository(client *ent.Client, logger *slog.Logger) AddressRepository {
	return &addressRepository{
		client: client,
		logger: logger,
	}
}

func (r *addressRepository) Ensure(ctx context.Context, name string) (*entity.Address, error) {
	existing, err := r.client.Address.Query().
		Where(entaddress.Name(name)).
		Only(ctx)
	if err == nil {
		return utils.ToAddress(existing), nil
	}
	if !ent.IsNotFound(err) {
		return nil, err
	}

	row, err := r.client.Address.Create().SetName(name).Save(ctx)
	if err != nil {
		r.logger.Error("failed to create address", "name", name, "error", err)
		return nil, err
	}
	return utils.ToAddress(row), nil
}

func (r *addressRepository) List(ctx context.Context) ([]*entity.Address, error) {
	rows, err := r.client.Address.Query().
		Order(entaddress.ByName()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list addresses", "error", err)
		return nil, err
	}

	result := make([]*entity.Address, len(rows))
	for i, row := range rows {
		result[i] = utils.ToAddress(row)
	}
	return result, nil
}
