package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/akeren/waitlist-foundry/internal/models"
	"github.com/akeren/waitlist-foundry/pkg/constants"
	"github.com/akeren/waitlist-foundry/pkg/supabase"
)

const DefaultSupabaseTable = "Waitlist entries"

// RowInserter is the part of pkg/supabase.Client the adapter needs.
type RowInserter interface {
	Insert(ctx context.Context, table string, rows any, out any) error
	Ping(ctx context.Context, table string) error
}

type supabaseRow struct {
	ID        json.RawMessage `json:"id,omitempty"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	CreatedAt string          `json:"created_at"`
	IPAddress string          `json:"ip_address,omitempty"`
	UserAgent string          `json:"user_agent,omitempty"`
}

// Supabase inserts into a table whose email column carries a unique constraint.
type Supabase struct {
	client RowInserter
	table  string
}

func NewSupabase(client RowInserter, table string) *Supabase {
	if table == "" {
		table = DefaultSupabaseTable
	}
	return &Supabase{client: client, table: table}
}

func (s *Supabase) Kind() Kind {
	return KindSupabase
}

func (s *Supabase) Ready() error {
	if s.client == nil {
		return &ConfigError{Kind: KindSupabase, Reason: "Database not configured"}
	}
	return nil
}

func (s *Supabase) Append(ctx context.Context, entry *models.WaitlistEntry) (*Result, error) {
	in := []supabaseRow{{
		Name:      entry.Name,
		Email:     entry.Email,
		CreatedAt: entry.CreatedAt.UTC().Format(constants.ISO8601MillisFormat),
		IPAddress: entry.IPAddress,
		UserAgent: entry.UserAgent,
	}}

	var out []supabaseRow
	err := s.client.Insert(ctx, s.table, in, &out)
	if errors.Is(err, supabase.ErrDecodeResponse) {
		// The row is stored; only its representation was unreadable.
		return &Result{Entry: *entry}, nil
	}
	if err != nil {
		return nil, supabaseError(err)
	}

	result := &Result{Entry: *entry}
	if len(out) > 0 {
		result.Entry.ID, result.RowID = decodeRowID(out[0].ID)
		if t, err := time.Parse(time.RFC3339Nano, out[0].CreatedAt); err == nil {
			result.Entry.CreatedAt = t
		}
	}

	return result, nil
}

// decodeRowID accepts serial and uuid primary keys alike.
func decodeRowID(raw json.RawMessage) (uint, string) {
	if len(raw) == 0 {
		return 0, ""
	}

	var n uint
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return 0, s
	}

	return 0, strings.TrimSpace(string(raw))
}

func (s *Supabase) Ping(ctx context.Context) error {
	if err := s.Ready(); err != nil {
		return err
	}
	if err := s.client.Ping(ctx, s.table); err != nil {
		return supabaseError(err)
	}
	return nil
}

func supabaseError(err error) error {
	if supabase.IsUniqueViolation(err) {
		return fmt.Errorf("%w: %w", ErrDuplicateEmail, err)
	}

	var apiErr *supabase.Error
	if errors.As(err, &apiErr) {
		return &Error{Kind: KindSupabase, Code: apiErr.Code, Message: apiErr.Message, Err: err}
	}

	return &Error{Kind: KindSupabase, Message: err.Error(), Err: err}
}
