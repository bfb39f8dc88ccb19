package credentials

import (
	"os"
	"path/filepath"
	"testing"

	festfusion_errors "festfusion/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquirePrefersKeyfileOnDisk(t *testing.T) {
	keyfile := filepath.Join(t.TempDir(), "service-account.json")
	require.NoError(t, os.WriteFile(keyfile, []byte(`{"type":"service_account"}`), 0600))

	opts, err := NewProvider(keyfile, `{"type":"service_account"}`).Acquire()
	require.NoError(t, err)
	assert.Len(t, opts, 2)
}

func TestAcquireFallsBackToSecretJSON(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "service-account.json")

	opts, err := NewProvider(missing, `{"type":"service_account"}`).Acquire()
	require.NoError(t, err)
	assert.Len(t, opts, 2)
}

func TestAcquireWithoutAnyCredential(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "service-account.json")

	_, err := NewProvider(missing, "").Acquire()
	assert.ErrorIs(t, err, festfusion_errors.ErrCredentialUnavailable)
}
