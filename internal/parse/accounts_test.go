package parse

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huisbeheer/utility-tracker/constants"
)

func TestAccountTableLookup(t *testing.T) {
	table := NewAccountTable(DefaultAccounts())
	assert.Equal(t, 6, table.Len())

	acct, ok := table.Lookup("913531")
	require.True(t, ok)
	assert.Equal(t, "KAYA WATERVILLAS 84-A", acct.Address)
	assert.Equal(t, constants.Water, acct.UtilityType)

	acct, ok = table.Lookup("022379")
	require.True(t, ok)
	assert.Equal(t, "KAYA KUARTS 23", acct.Address)
	assert.Equal(t, constants.Electricity, acct.UtilityType)

	_, ok = table.Lookup("000000")
	assert.False(t, ok)
}

func TestLoadAccountTableDefaults(t *testing.T) {
	table, err := LoadAccountTable("")
	require.NoError(t, err)
	assert.Equal(t, 6, table.Len())
}

func TestLoadAccountTableFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.json")
	payload := `[
		{"account_id": "100001", "address": "KAYA GRANDI 1", "utility_type": "water"},
		{"account_id": "100002", "address": "KAYA GRANDI 1", "utility_type": "electricity"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	table, err := LoadAccountTable(path)
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())

	acct, ok := table.Lookup("100002")
	require.True(t, ok)
	assert.Equal(t, constants.Electricity, acct.UtilityType)
}

func TestLoadAccountTableRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{
			name:    "not an array",
			payload: `{"account_id": "100001"}`,
		},
		{
			name:    "missing required field",
			payload: `[{"account_id": "100001", "address": "KAYA GRANDI 1"}]`,
		},
		{
			name:    "unknown utility type",
			payload: `[{"account_id": "100001", "address": "KAYA GRANDI 1", "utility_type": "gas"}]`,
		},
		{
			name:    "not json",
			payload: `account_id=100001`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "accounts.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.payload), 0o644))

			_, err := LoadAccountTable(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadAccountTableMissingFile(t *testing.T) {
	_, err := LoadAccountTable(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
