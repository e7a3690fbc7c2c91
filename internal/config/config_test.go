package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAdAccounts(t *testing.T) {
	t.Run("Arquivo válido carrega o mapeamento completo", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ad_accounts.json")
		content := `{
			"alpha": {"Conta Alpha": "111", "Conta Alpha 2": "112"},
			"beta": {"Conta Beta": "222"}
		}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		accounts, err := loadAdAccounts(path)
		require.NoError(t, err)
		require.Len(t, accounts, 2)
		assert.Equal(t, "111", accounts["alpha"]["Conta Alpha"])
		assert.Equal(t, "222", accounts["beta"]["Conta Beta"])
	})

	t.Run("Arquivo ausente não é fatal", func(t *testing.T) {
		accounts, err := loadAdAccounts(filepath.Join(t.TempDir(), "inexistente.json"))
		require.NoError(t, err)
		assert.Empty(t, accounts)
	})

	t.Run("JSON inválido retorna erro", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ad_accounts.json")
		require.NoError(t, os.WriteFile(path, []byte("{isso não é json"), 0o644))

		_, err := loadAdAccounts(path)
		assert.Error(t, err)
	})
}

func TestTrimEmpty(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, trimEmpty([]string{"a", "", "b", ""}))
	assert.Empty(t, trimEmpty([]string{""}))
	assert.Empty(t, trimEmpty(nil))
}
