package interfaces

import (
	"context"
	"tender_finder/internal/domain/entities"
)

//go:generate mockgen -source=tender_repository_interface.go -destination=mocks/tender_repository_interface_mock.go -package=mock_interfaces

// ITenderRepository is the read-only view of the tender store.
//
// ListAll gives no ordering guarantee; callers impose their own.
// GetByID returns a zero Tender (ID 0) when the record does not exist.
type ITenderRepository interface {
	ListAll(ctx context.Context) ([]entities.Tender, error)
	GetByID(ctx context.Context, id int64) (entities.Tender, error)
}
