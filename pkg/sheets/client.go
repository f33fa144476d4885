// Package sheets appends rows to Google Sheets with service-account credentials.
package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

const (
	valueInputUserEntered = "USER_ENTERED"
	insertDataInsertRows  = "INSERT_ROWS"
)

// Client is safe for concurrent use and is meant to be built once per process.
type Client struct {
	service *sheetsapi.Service
}

// NewClient authenticates with account when given. Extra options are applied
// after the credentials, so tests can point the client at a fake endpoint.
func NewClient(ctx context.Context, account *ServiceAccount, opts ...option.ClientOption) (*Client, error) {
	clientOpts := []option.ClientOption{option.WithScopes(sheetsapi.SpreadsheetsScope)}

	if account != nil {
		raw, err := account.JSON()
		if err != nil {
			return nil, fmt.Errorf("encode service account key: %w", err)
		}
		clientOpts = append(clientOpts, option.WithCredentialsJSON(raw))
	}

	clientOpts = append(clientOpts, opts...)

	service, err := sheetsapi.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &Client{service: service}, nil
}

// AppendRow adds one row after the last row of the table found in
// rangeA1 and returns the range the API reports as written.
func (c *Client) AppendRow(ctx context.Context, spreadsheetID, rangeA1 string, row []any) (string, error) {
	resp, err := c.service.Spreadsheets.Values.
		Append(spreadsheetID, rangeA1, &sheetsapi.ValueRange{Values: [][]any{row}}).
		ValueInputOption(valueInputUserEntered).
		InsertDataOption(insertDataInsertRows).
		Context(ctx).
		Do()
	if err != nil {
		return "", err
	}

	if resp.Updates == nil {
		return "", nil
	}

	return resp.Updates.UpdatedRange, nil
}

// Ping fetches the spreadsheet id only, proving both credentials and access.
func (c *Client) Ping(ctx context.Context, spreadsheetID string) error {
	_, err := c.service.Spreadsheets.Get(spreadsheetID).
		Fields("spreadsheetId").
		Context(ctx).
		Do()
	return err
}
