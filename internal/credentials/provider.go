// Package credentials resolves the Google service identity used for the
// worksheet. Keyfile on disk wins; a JSON secret bundle from the environment
// is the fallback for deployments without a mounted file.
package credentials

import (
	"os"

	festfusion_errors "festfusion/pkg/errors"

	"google.golang.org/api/option"
)

// Scopes required for the tabular store: worksheet read/write plus the Drive
// query used to resolve the spreadsheet by name.
var Scopes = []string{
	"https://www.googleapis.com/auth/spreadsheets",
	"https://www.googleapis.com/auth/drive",
}

type Provider struct {
	keyfilePath string
	secretJSON  string
}

func NewProvider(keyfilePath, secretJSON string) *Provider {
	return &Provider{keyfilePath: keyfilePath, secretJSON: secretJSON}
}

// Acquire returns the client options carrying the resolved credential, or
// ErrCredentialUnavailable when neither strategy applies.
func (p *Provider) Acquire() ([]option.ClientOption, error) {
	if p.keyfilePath != "" {
		if _, err := os.Stat(p.keyfilePath); err == nil {
			return []option.ClientOption{
				option.WithCredentialsFile(p.keyfilePath),
				option.WithScopes(Scopes...),
			}, nil
		}
	}
	if p.secretJSON != "" {
		return []option.ClientOption{
			option.WithCredentialsJSON([]byte(p.secretJSON)),
			option.WithScopes(Scopes...),
		}, nil
	}
	return nil, festfusion_errors.ErrCredentialUnavailable
}
