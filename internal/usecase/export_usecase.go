package usecase

import (
	"context"

	"storefront/internal/domain/service"
)

// ExportFile is a rendered document ready to be shared.
type ExportFile struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Key         string `json:"key"` // Object key in the export store.
	URI         string `json:"uri"`
	Data        []byte `json:"-"`
}

// ExportUsecase defines PDF exports.
type ExportUsecase interface {
	// Invoice renders the customer's orders for the picked delivery day.
	// It returns nil without error when the picker was dismissed.
	Invoice(ctx context.Context, uid string, picker service.DatePicker) (*ExportFile, error)

	// Report renders the admin order list under filter.
	Report(ctx context.Context, filter *OrderFilter) (*ExportFile, error)

	// Open fetches a previously exported document.
	Open(ctx context.Context, key string) (*ExportFile, error)
}
