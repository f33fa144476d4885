package waitlist

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/akeren/waitlist-foundry/internal/backend"
	"github.com/akeren/waitlist-foundry/internal/log"
	apperrors "github.com/akeren/waitlist-foundry/pkg/errors"
	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -destination=mock_backend_test.go -package=waitlist github.com/akeren/waitlist-foundry/internal/backend Backend

const (
	MsgRequiredFields     = "Name and email are required"
	MsgInvalidEmail       = "Invalid email format"
	MsgDuplicateEmail     = "Email already registered"
	MsgSubmitted          = "Successfully added to waitlist!"
	MsgNotConfigured      = "Waitlist backend not configured"
	msgSaveFailedRelation = "Failed to save entry"
	msgSaveFailedSheet    = "Failed to add entry"
)

type WaitlistService interface {
	// Submit validates, normalizes and stores one entry through the configured backend.
	Submit(ctx context.Context, req *SubmitWaitlistRequest, meta ClientMeta) (*WaitlistEntryResponse, error)
}

type waitlistService struct {
	logger   *log.Logger
	backend  backend.Backend
	observer Observer
	validate *validator.Validate
	tracer   trace.Tracer
	now      func() time.Time
}

func NewWaitlistService(logger *log.Logger, b backend.Backend, observer Observer) WaitlistService {
	if observer == nil {
		observer = noopObserver{}
	}
	return &waitlistService{
		logger:   logger,
		backend:  b,
		observer: observer,
		validate: newValidator(),
		tracer:   otel.Tracer("github.com/akeren/waitlist-foundry/domain/waitlist"),
		now:      time.Now,
	}
}

func (s *waitlistService) Submit(ctx context.Context, req *SubmitWaitlistRequest, meta ClientMeta) (*WaitlistEntryResponse, error) {
	kind := s.backend.Kind()

	ctx, span := s.tracer.Start(ctx, "waitlist.submit", trace.WithAttributes(attribute.String("waitlist.backend", kind.String())))
	defer span.End()

	logger := log.GetLoggerInstanceFromContext(ctx, s.logger).With("backend", kind.String())

	if req == nil {
		req = &SubmitWaitlistRequest{}
	}

	normalized := &SubmitWaitlistRequest{
		Name:  strings.TrimSpace(req.Name),
		Email: strings.ToLower(strings.TrimSpace(req.Email)),
	}

	if err := s.validate.Struct(normalized); err != nil {
		logger.Warn("Rejected waitlist submission with missing fields", "error", err)
		return nil, s.fail(span, kind, OutcomeInvalid, apperrors.NewValidationError(MsgRequiredFields, err))
	}

	if kind.Relational() {
		if err := s.validate.Var(normalized.Email, emailFormatTag); err != nil {
			logger.Warn("Rejected waitlist submission with invalid email", "email", normalized.Email)
			return nil, s.fail(span, kind, OutcomeInvalid, apperrors.NewValidationError(MsgInvalidEmail, err))
		}
	}

	if err := s.backend.Ready(); err != nil {
		logger.Error("Waitlist backend not configured", "error", err)
		return nil, s.fail(span, kind, OutcomeUnconfigured, configurationError(err))
	}

	entry := ToWaitlistEntryModel(normalized, meta)
	entry.CreatedAt = s.now().UTC().Truncate(time.Millisecond)

	result, err := s.backend.Append(ctx, entry)
	if err != nil {
		appErr := s.backendError(kind, err)
		switch apperrors.GetErrorType(appErr) {
		case apperrors.ErrorTypeDuplicateEmail:
			logger.Warn("Email already on waitlist", "email", entry.Email)
			return nil, s.fail(span, kind, OutcomeDuplicate, appErr)
		case apperrors.ErrorTypeConfiguration:
			logger.Error("Waitlist backend not configured", "error", err)
			return nil, s.fail(span, kind, OutcomeUnconfigured, appErr)
		default:
			logger.Error("Failed to store waitlist entry", "email", entry.Email, "error", err)
			return nil, s.fail(span, kind, OutcomeFailed, appErr)
		}
	}

	response := ToWaitlistEntryResponse(result)
	s.observer.ObserveSubmission(kind, OutcomeStored)
	span.SetStatus(codes.Ok, "")

	logger.Info("Waitlist entry stored", "id", response.ID, "email", response.Email, "created_at", response.CreatedAt)
	return &response, nil
}

func (s *waitlistService) fail(span trace.Span, kind backend.Kind, outcome Outcome, err *apperrors.AppError) error {
	s.observer.ObserveSubmission(kind, outcome)
	span.SetAttributes(attribute.String("waitlist.outcome", string(outcome)))
	span.SetStatus(codes.Error, err.Message)
	return err
}

func (s *waitlistService) backendError(kind backend.Kind, err error) *apperrors.AppError {
	if errors.Is(err, backend.ErrDuplicateEmail) {
		return apperrors.NewDuplicateEmailError(MsgDuplicateEmail, err)
	}

	var cfgErr *backend.ConfigError
	if errors.As(err, &cfgErr) {
		return configurationError(err)
	}

	message := msgSaveFailedRelation
	if kind == backend.KindSheets {
		message = msgSaveFailedSheet
	}

	var backendErr *backend.Error
	if errors.As(err, &backendErr) {
		return apperrors.NewBackendFailureError(message, backendErr.Code, backendErr.Message, err)
	}

	return apperrors.NewBackendFailureError(message, "", "", err)
}

func configurationError(err error) *apperrors.AppError {
	var cfgErr *backend.ConfigError
	if errors.As(err, &cfgErr) && cfgErr.Reason != "" {
		return apperrors.NewConfigurationError(cfgErr.Reason, err)
	}
	return apperrors.NewConfigurationError(MsgNotConfigured, err)
}
