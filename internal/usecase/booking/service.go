package booking

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/bookline/gateway/internal/adapter/backend"
	"github.com/bookline/gateway/internal/domain/entity"
	"github.com/bookline/gateway/internal/infrastructure/config"
)

var (
	dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRe = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

//go:generate mockgen -source=service.go -destination=../../mocks/booking_mocks.go -package=mocks

// SlotAPI is the slice of the backend client the booking flow needs.
type SlotAPI interface {
	CreateSlot(ctx context.Context, accessToken string, in backend.CreateSlotInput) (*entity.Slot, string, error)
}

// ValidationError lists the request fields that failed validation.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input: %s", strings.Join(e.Fields, ", "))
}

type Service struct {
	api             SlotAPI
	location        *time.Location
	defaultDuration int
}

func NewService(api SlotAPI, cfg config.BookingConfig) (*Service, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading booking timezone %q: %w", cfg.Timezone, err)
	}

	defaultDuration := cfg.DefaultDuration
	if defaultDuration <= 0 {
		defaultDuration = 30
	}

	return &Service{
		api:             api,
		location:        loc,
		defaultDuration: defaultDuration,
	}, nil
}

type BookInput struct {
	ServiceID string
	Date      string // YYYY-MM-DD, local to the booking timezone
	Time      string // HH:MM, local to the booking timezone
	// DurationMin of zero means "not supplied" and takes the default;
	// a negative value is invalid.
	DurationMin int
	HasDuration bool
}

type BookResult struct {
	Slot    *entity.Slot
	Message string
}

// Book validates the customer's local date/time, converts it to a UTC window
// and reserves the slot upstream.
func (s *Service) Book(ctx context.Context, accessToken string, in BookInput) (*BookResult, error) {
	var fields []string
	if in.ServiceID == "" {
		fields = append(fields, "service_id")
	}
	if !dateRe.MatchString(in.Date) {
		fields = append(fields, "date")
	}
	if !timeRe.MatchString(in.Time) {
		fields = append(fields, "time")
	}

	duration := in.DurationMin
	if !in.HasDuration {
		duration = s.defaultDuration
	}
	if duration <= 0 || duration > 24*60 {
		fields = append(fields, "duration")
	}

	var openTime time.Time
	if len(fields) == 0 {
		var err error
		openTime, err = time.ParseInLocation("2006-01-02T15:04", in.Date+"T"+in.Time, s.location)
		if err != nil {
			fields = append(fields, "date", "time")
		}
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	openUTC := openTime.UTC()
	closeUTC := openUTC.Add(time.Duration(duration) * time.Minute)

	slot, message, err := s.api.CreateSlot(ctx, accessToken, backend.CreateSlotInput{
		ServiceID: in.ServiceID,
		OpenTime:  openUTC,
		CloseTime: closeUTC,
	})
	if err != nil {
		return nil, err
	}

	return &BookResult{Slot: slot, Message: message}, nil
}
