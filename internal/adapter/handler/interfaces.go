package handler

import (
	"context"
	"io"

	"github.com/bookline/gateway/internal/adapter/backend"
	"github.com/bookline/gateway/internal/domain/entity"
	"github.com/bookline/gateway/internal/pkg/pagination"
	"github.com/bookline/gateway/internal/usecase/booking"
	"github.com/bookline/gateway/internal/usecase/imgsign"
	"github.com/bookline/gateway/internal/usecase/media"
	"github.com/bookline/gateway/internal/usecase/payment"
	"github.com/bookline/gateway/internal/usecase/subscription"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/handler_mocks.go -package=mocks

type ImageSignService interface {
	SignedURL(req imgsign.SignRequest) string
}

type BookingService interface {
	Book(ctx context.Context, accessToken string, in booking.BookInput) (*booking.BookResult, error)
}

type PaymentService interface {
	Pay(ctx context.Context, accessToken string, in payment.PayInput) (*payment.PayResult, error)
	OrderStatus(ctx context.Context, accessToken, orderID string) (*entity.Order, error)
}

type CatalogService interface {
	ListBusinesses(ctx context.Context, params pagination.Params) ([]entity.Business, error)
	GetBusiness(ctx context.Context, publicID string) (*entity.Business, []entity.Service, error)
	UnavailableTimes(ctx context.Context, serviceID, date string) ([]string, error)
}

type ProfileService interface {
	UpdateProfile(ctx context.Context, accessToken string, in backend.ProfileUpdate) (*backend.ProfileUpdateResult, error)
}

type SubscriptionService interface {
	Subscribe(ctx context.Context, email string) (*subscription.SubscribeResult, error)
	Confirm(ctx context.Context, token string) (*entity.Subscriber, error)
}

type MediaService interface {
	Upload(ctx context.Context, in media.UploadInput) (*media.UploadResult, error)
	Fetch(ctx context.Context, key string) (io.ReadCloser, string, error)
}
