package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/akeren/waitlist-foundry/internal/backend"
	"github.com/akeren/waitlist-foundry/internal/log"
	"github.com/akeren/waitlist-foundry/pkg/sheets"
	"github.com/akeren/waitlist-foundry/pkg/supabase"
	"github.com/caarlos0/env/v10"
	"google.golang.org/api/option"
	"gorm.io/gorm"
)

const (
	reasonNoBackend         = "Waitlist backend not configured"
	reasonGoogleCredentials = "Google credentials not configured"
	reasonDatabase          = "Database not configured"
)

// BackendConfig holds every credential a waitlist backend can be built from.
// It is read once at startup.
type BackendConfig struct {
	Backend string `env:"WAITLIST_BACKEND" envDefault:"auto"`

	// Google Sheets: either the whole key document or its discrete fields.
	GoogleServiceAccountKey string `env:"GOOGLE_SERVICE_ACCOUNT_KEY"`
	GoogleProjectID         string `env:"GOOGLE_PROJECT_ID"`
	GooglePrivateKeyID      string `env:"GOOGLE_PRIVATE_KEY_ID"`
	GooglePrivateKey        string `env:"GOOGLE_PRIVATE_KEY"`
	GoogleClientEmail       string `env:"GOOGLE_CLIENT_EMAIL"`
	GoogleClientID          string `env:"GOOGLE_CLIENT_ID"`
	GoogleClientCertURL     string `env:"GOOGLE_CLIENT_X509_CERT_URL"`
	SpreadsheetID           string `env:"SPREADSHEET_ID"`
	SheetsRange             string `env:"SHEETS_RANGE" envDefault:"Sheet1!A:C"`

	// Supabase (PostgREST)
	SupabaseURL     string `env:"SUPABASE_URL"`
	SupabaseAnonKey string `env:"SUPABASE_ANON_KEY"`
	SupabaseTable   string `env:"SUPABASE_TABLE" envDefault:"Waitlist entries"`
}

func LoadBackendConfig() (*BackendConfig, error) {
	cfg := &BackendConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse backend config: %w", err)
	}

	cfg.GoogleServiceAccountKey = sanitizeEnv(cfg.GoogleServiceAccountKey)
	cfg.GooglePrivateKey = sanitizeEnv(cfg.GooglePrivateKey)
	cfg.SpreadsheetID = sanitizeEnv(cfg.SpreadsheetID)
	cfg.SupabaseURL = sanitizeEnv(cfg.SupabaseURL)
	cfg.SupabaseAnonKey = sanitizeEnv(cfg.SupabaseAnonKey)

	return cfg, nil
}

func (c *BackendConfig) accountFields() sheets.AccountFields {
	return sheets.AccountFields{
		ProjectID:         strings.TrimSpace(c.GoogleProjectID),
		PrivateKeyID:      strings.TrimSpace(c.GooglePrivateKeyID),
		PrivateKey:        c.GooglePrivateKey,
		ClientEmail:       strings.TrimSpace(c.GoogleClientEmail),
		ClientID:          strings.TrimSpace(c.GoogleClientID),
		ClientX509CertURL: strings.TrimSpace(c.GoogleClientCertURL),
	}
}

func (c *BackendConfig) hasSupabase() bool {
	return c.SupabaseURL != "" && c.SupabaseAnonKey != ""
}

func (c *BackendConfig) hasSheets() bool {
	return c.GoogleServiceAccountKey != "" || !c.accountFields().IsEmpty() || c.SpreadsheetID != ""
}

// ResolveKind turns WAITLIST_BACKEND into a concrete backend. "auto" prefers
// Supabase, then Sheets, and never picks the direct Postgres variant.
func (c *BackendConfig) ResolveKind() (backend.Kind, error) {
	kind, err := backend.ParseKind(c.Backend)
	if err != nil {
		return backend.KindNone, err
	}

	if kind != backend.KindAuto {
		return kind, nil
	}

	switch {
	case c.hasSupabase():
		return backend.KindSupabase, nil
	case c.hasSheets():
		return backend.KindSheets, nil
	default:
		return backend.KindNone, nil
	}
}

// NewBackend builds the one backend the process will use. Credential or
// client failures never abort startup: they produce an unavailable backend
// so every submission fails fast with a configuration error. db is only
// used by the postgres variant and may be nil otherwise.
func NewBackend(ctx context.Context, logger *log.Logger, cfg *BackendConfig, db *gorm.DB, sheetsOpts ...option.ClientOption) (backend.Backend, error) {
	kind, err := cfg.ResolveKind()
	if err != nil {
		return nil, err
	}

	var b backend.Backend
	switch kind {
	case backend.KindSheets:
		b = newSheetsBackend(ctx, cfg, sheetsOpts)
	case backend.KindSupabase:
		b = newSupabaseBackend(cfg)
	case backend.KindPostgres:
		if db == nil {
			b = backend.NewUnavailable(kind, reasonDatabase, nil)
		} else {
			b = backend.NewPostgres(db)
		}
	default:
		b = backend.NewUnavailable(backend.KindNone, reasonNoBackend, nil)
	}

	if err := b.Ready(); err != nil {
		logger.Error("Waitlist backend unavailable; submissions will be rejected", "backend", b.Kind().String(), "error", err)
	} else {
		logger.Info("Waitlist backend resolved", "backend", b.Kind().String(), "requested", cfg.Backend)
	}

	return b, nil
}

func newSheetsBackend(ctx context.Context, cfg *BackendConfig, opts []option.ClientOption) backend.Backend {
	var (
		account *sheets.ServiceAccount
		err     error
	)

	fields := cfg.accountFields()
	switch {
	case cfg.GoogleServiceAccountKey != "":
		account, err = sheets.ParseServiceAccount([]byte(cfg.GoogleServiceAccountKey))
	case !fields.IsEmpty():
		account, err = sheets.AssembleServiceAccount(fields)
	default:
		return backend.NewUnavailable(backend.KindSheets, reasonGoogleCredentials, sheets.ErrMissingCredentials)
	}
	if err != nil {
		return backend.NewUnavailable(backend.KindSheets, reasonGoogleCredentials, err)
	}

	client, err := sheets.NewClient(ctx, account, opts...)
	if err != nil {
		return backend.NewUnavailable(backend.KindSheets, reasonGoogleCredentials, err)
	}

	return backend.NewSheets(client, cfg.SpreadsheetID, cfg.SheetsRange)
}

func newSupabaseBackend(cfg *BackendConfig) backend.Backend {
	client, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseAnonKey)
	if err != nil {
		return backend.NewUnavailable(backend.KindSupabase, reasonDatabase, err)
	}

	return backend.NewSupabase(client, cfg.SupabaseTable)
}
