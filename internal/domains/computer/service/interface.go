package service

import (
	"context"

	"github.com/google/uuid"

	"catalog-backend/internal/domains/computer/model"
)

// ServiceInterface is the transport-independent contract of the computer
// domain.
type ServiceInterface interface {
	Create(ctx context.Context, computer *model.Computer) (uuid.UUID, error)
	Update(ctx context.Context, id string, computer *model.Computer, version string) (int, error)
	Delete(ctx context.Context, id string) (bool, error)
	FindByID(ctx context.Context, id string) (*model.Computer, error)
	Find(ctx context.Context, filter model.ComputerFilter) ([]model.Computer, error)
}
