package usecase

import (
	"context"

	"github.com/rajudas/field-sales-api/internal/entity"
	"github.com/rajudas/field-sales-api/internal/infra/queue"
)

type VisitRepositoryInterface interface {
	Create(ctx context.Context, v *entity.VisitRecord) (int, error)
	ListAll(ctx context.Context) ([]entity.VisitRecord, error)
	ListByOwner(ctx context.Context, username string) ([]entity.VisitRecord, error)
	MostRecentByStore(ctx context.Context, storeName string) (*entity.VisitRecord, error)
	UpdateLeadStatus(ctx context.Context, id int, status string) error
	StoreNames(ctx context.Context) ([]string, error)
}

type UserRepositoryInterface interface {
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
}

// GeoProvider is one network-tier IP geolocation source. Each provider call is
// independent; failure of one must not prevent trying the next.
type GeoProvider interface {
	Name() string
	Locate(ctx context.Context) (entity.GeoFix, error)
}

// PhotoNormalizer constrains a raw photograph and re-encodes it into the
// embeddable base64 data-URI form stored on the record.
type PhotoNormalizer interface {
	Normalize(data []byte) (string, error)
}

type ReminderPublisherInterface interface {
	PublishReminder(ctx context.Context, payload queue.ReminderPayload) error
}
