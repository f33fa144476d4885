// Package backend defines the storage capability a waitlist submission is
// written through, and its Google Sheets, Supabase and Postgres adapters.
package backend

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/akeren/waitlist-foundry/internal/models"
)

type Kind string

const (
	KindAuto     Kind = "auto"
	KindNone     Kind = "none"
	KindSheets   Kind = "sheets"
	KindSupabase Kind = "supabase"
	KindPostgres Kind = "postgres"
)

func ParseKind(raw string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(raw))); k {
	case "":
		return KindAuto, nil
	case KindAuto, KindSheets, KindSupabase, KindPostgres:
		return k, nil
	default:
		return KindNone, fmt.Errorf("unknown waitlist backend %q (allowed: auto, sheets, supabase, postgres)", raw)
	}
}

// Relational backends validate email format and enforce email uniqueness.
func (k Kind) Relational() bool {
	return k == KindSupabase || k == KindPostgres
}

func (k Kind) String() string {
	return string(k)
}

// Result echoes what the backend stored. UpdatedRange is only set by Sheets.
type Result struct {
	Entry        models.WaitlistEntry
	UpdatedRange string

	// RowID is set instead of Entry.ID when the store keys rows by a
	// non-numeric value such as a uuid.
	RowID string
}

// Backend stores one waitlist entry per Append call. Implementations hold a
// client built once at startup and are safe for concurrent use.
type Backend interface {
	Kind() Kind
	// Ready returns a *ConfigError when the backend cannot be used at all.
	Ready() error
	Append(ctx context.Context, entry *models.WaitlistEntry) (*Result, error)
	Ping(ctx context.Context) error
}

// ErrDuplicateEmail is returned (wrapped) when the store already holds the email.
var ErrDuplicateEmail = errors.New("email already registered")

// Error is a storage failure carrying the vendor's own code and message.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s backend: %s: %s", e.Kind, e.Code, e.Message)
	}
	return fmt.Sprintf("%s backend: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ConfigError means credentials are absent or could not be turned into a client.
type ConfigError struct {
	Kind   Kind
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s backend not configured: %s: %v", e.Kind, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s backend not configured: %s", e.Kind, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Unavailable stands in for a backend that failed configuration. It never
// performs I/O; Ready keeps reporting the startup failure.
type Unavailable struct {
	cause *ConfigError
}

func NewUnavailable(kind Kind, reason string, err error) *Unavailable {
	return &Unavailable{cause: &ConfigError{Kind: kind, Reason: reason, Err: err}}
}

func (u *Unavailable) Kind() Kind {
	return u.cause.Kind
}

func (u *Unavailable) Ready() error {
	return u.cause
}

func (u *Unavailable) Append(context.Context, *models.WaitlistEntry) (*Result, error) {
	return nil, u.cause
}

func (u *Unavailable) Ping(context.Context) error {
	return u.cause
}
