package sheets

import (
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"errors"
	"fmt"
	"strings"

	"github.com/akeren/waitlist-foundry/pkg/constants"
	"golang.org/x/oauth2/google"
	sheetsapi "google.golang.org/api/sheets/v4"
)

const serviceAccountType = "service_account"

var (
	ErrMissingCredentials = errors.New("service account credentials are missing")
	ErrMalformedKey       = errors.New("service account private key is malformed")
)

// ServiceAccount is the JSON key document Google issues for a service account.
type ServiceAccount struct {
	Type                    string `json:"type"`
	ProjectID               string `json:"project_id"`
	PrivateKeyID            string `json:"private_key_id"`
	PrivateKey              string `json:"private_key"`
	ClientEmail             string `json:"client_email"`
	ClientID                string `json:"client_id"`
	AuthURI                 string `json:"auth_uri"`
	TokenURI                string `json:"token_uri"`
	AuthProviderX509CertURL string `json:"auth_provider_x509_cert_url"`
	ClientX509CertURL       string `json:"client_x509_cert_url"`
}

// AccountFields are the discrete pieces of a key, as they arrive when the
// JSON document is split across several environment variables.
type AccountFields struct {
	ProjectID         string
	PrivateKeyID      string
	PrivateKey        string
	ClientEmail       string
	ClientID          string
	ClientX509CertURL string
}

// IsEmpty reports whether none of the fields carry a value.
func (f AccountFields) IsEmpty() bool {
	return f == AccountFields{}
}

// ParseServiceAccount decodes and validates a whole key document.
func ParseServiceAccount(raw []byte) (*ServiceAccount, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return nil, ErrMissingCredentials
	}

	var account ServiceAccount
	if err := json.Unmarshal(raw, &account); err != nil {
		return nil, fmt.Errorf("decode service account key: %w", err)
	}

	if err := account.Validate(); err != nil {
		return nil, err
	}

	return &account, nil
}

// AssembleServiceAccount builds the same document from discrete fields.
// Literal "\n" sequences in the private key are turned into newlines since
// most environment stores cannot hold multi-line values.
func AssembleServiceAccount(fields AccountFields) (*ServiceAccount, error) {
	account := &ServiceAccount{
		Type:                    serviceAccountType,
		ProjectID:               fields.ProjectID,
		PrivateKeyID:            fields.PrivateKeyID,
		PrivateKey:              strings.ReplaceAll(fields.PrivateKey, `\n`, "\n"),
		ClientEmail:             fields.ClientEmail,
		ClientID:                fields.ClientID,
		AuthURI:                 constants.GoogleAuthURI,
		TokenURI:                constants.GoogleTokenURI,
		AuthProviderX509CertURL: constants.GoogleAuthProviderCertURL,
		ClientX509CertURL:       fields.ClientX509CertURL,
	}

	if err := account.Validate(); err != nil {
		return nil, err
	}

	return account, nil
}

// Validate checks the fields the token exchange cannot work without and
// that the private key parses.
func (sa *ServiceAccount) Validate() error {
	if sa.ClientEmail == "" || sa.PrivateKey == "" {
		return fmt.Errorf("%w: client_email and private_key are required", ErrMissingCredentials)
	}

	if sa.Type != "" && sa.Type != serviceAccountType {
		return fmt.Errorf("unsupported credential type %q", sa.Type)
	}

	block, _ := pem.Decode([]byte(sa.PrivateKey))
	if block == nil {
		return ErrMalformedKey
	}

	if _, err := x509.ParsePKCS8PrivateKey(block.Bytes); err != nil {
		if _, errPKCS1 := x509.ParsePKCS1PrivateKey(block.Bytes); errPKCS1 != nil {
			return fmt.Errorf("%w: %v", ErrMalformedKey, err)
		}
	}

	raw, err := sa.JSON()
	if err != nil {
		return err
	}

	if _, err := google.JWTConfigFromJSON(raw, sheetsapi.SpreadsheetsScope); err != nil {
		return fmt.Errorf("service account key rejected: %w", err)
	}

	return nil
}

func (sa *ServiceAccount) JSON() ([]byte, error) {
	copied := *sa
	if copied.Type == "" {
		copied.Type = serviceAccountType
	}
	return json.Marshal(copied)
}
