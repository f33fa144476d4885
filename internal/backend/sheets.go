package backend

import (
	"context"
	"errors"
	"strconv"

	"github.com/akeren/waitlist-foundry/internal/models"
	"github.com/akeren/waitlist-foundry/pkg/constants"
	"google.golang.org/api/googleapi"
)

const DefaultSheetsRange = "Sheet1!A:C"

// RowAppender is the part of pkg/sheets.Client the adapter needs.
type RowAppender interface {
	AppendRow(ctx context.Context, spreadsheetID, rangeA1 string, row []any) (string, error)
	Ping(ctx context.Context, spreadsheetID string) error
}

// Sheets appends (timestamp, name, email) rows. It never deduplicates.
type Sheets struct {
	client        RowAppender
	spreadsheetID string
	rangeA1       string
}

func NewSheets(client RowAppender, spreadsheetID, rangeA1 string) *Sheets {
	if rangeA1 == "" {
		rangeA1 = DefaultSheetsRange
	}
	return &Sheets{client: client, spreadsheetID: spreadsheetID, rangeA1: rangeA1}
}

func (s *Sheets) Kind() Kind {
	return KindSheets
}

func (s *Sheets) Ready() error {
	if s.client == nil {
		return &ConfigError{Kind: KindSheets, Reason: "Google credentials not configured"}
	}
	if s.spreadsheetID == "" {
		return &ConfigError{Kind: KindSheets, Reason: "Spreadsheet ID not configured"}
	}
	return nil
}

func (s *Sheets) Append(ctx context.Context, entry *models.WaitlistEntry) (*Result, error) {
	row := []any{
		entry.CreatedAt.UTC().Format(constants.ISO8601MillisFormat),
		entry.Name,
		entry.Email,
	}

	updatedRange, err := s.client.AppendRow(ctx, s.spreadsheetID, s.rangeA1, row)
	if err != nil {
		return nil, sheetsError(err)
	}

	stored := models.WaitlistEntry{Name: entry.Name, Email: entry.Email, CreatedAt: entry.CreatedAt}
	return &Result{Entry: stored, UpdatedRange: updatedRange}, nil
}

func (s *Sheets) Ping(ctx context.Context) error {
	if err := s.Ready(); err != nil {
		return err
	}
	if err := s.client.Ping(ctx, s.spreadsheetID); err != nil {
		return sheetsError(err)
	}
	return nil
}

// sheetsError passes the Google API status and message through untouched.
func sheetsError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		msg := apiErr.Message
		if msg == "" {
			msg = apiErr.Error()
		}
		return &Error{Kind: KindSheets, Code: strconv.Itoa(apiErr.Code), Message: msg, Err: err}
	}
	return &Error{Kind: KindSheets, Message: err.Error(), Err: err}
}
