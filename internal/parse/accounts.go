package parse

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/huisbeheer/utility-tracker/constants"
)

// Account maps a utility-company customer number to its canonical service
// address and utility type. A resolved account is ground truth: it
// overrides whatever the bill text says.
type Account struct {
	AccountID   string                `json:"account_id"`
	Address     string                `json:"address"`
	UtilityType constants.UtilityType `json:"utility_type"`
}

// AccountTable is the immutable lookup table, loaded once and safe for
// concurrent readers.
type AccountTable struct {
	byID map[string]Account
}

func NewAccountTable(accounts []Account) *AccountTable {
	byID := make(map[string]Account, len(accounts))
	for _, a := range accounts {
		byID[a.AccountID] = a
	}
	return &AccountTable{byID: byID}
}

// Lookup resolves an account by exact customer-number match.
func (t *AccountTable) Lookup(accountID string) (Account, bool) {
	a, ok := t.byID[accountID]
	return a, ok
}

func (t *AccountTable) Len() int { return len(t.byID) }

// DefaultAccounts returns the built-in WEB Bonaire account list.
func DefaultAccounts() []Account {
	return []Account{
		{AccountID: "031650", Address: "KAYA WATERVILLAS 84-A", UtilityType: constants.Electricity},
		{AccountID: "913531", Address: "KAYA WATERVILLAS 84-A", UtilityType: constants.Water},
		{AccountID: "031561", Address: "KAYA WATERVILLAS 84-B", UtilityType: constants.Electricity},
		{AccountID: "913646", Address: "KAYA WATERVILLAS 84-B", UtilityType: constants.Water},
		{AccountID: "022379", Address: "KAYA KUARTS 23", UtilityType: constants.Electricity},
		{AccountID: "903340", Address: "KAYA KUARTS 23", UtilityType: constants.Water},
	}
}

// buildAccountsSchema returns the JSON-Schema the accounts file must satisfy.
func buildAccountsSchema() map[string]any {
	return map[string]any{
		"type": "array",
		"items": map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties": map[string]any{
				"account_id":   map[string]any{"type": "string", "minLength": 1},
				"address":      map[string]any{"type": "string", "minLength": 1},
				"utility_type": map[string]any{"type": "string", "enum": constants.UtilityTypes()},
			},
			"required": []string{"account_id", "address", "utility_type"},
		},
	}
}

// validateJSONAgainstSchema validates "data" against "schemaMap".
func validateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("accounts.schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("accounts.schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}

// LoadAccountTable reads an accounts JSON file, validates it against the
// schema, and returns the table. An empty path yields the built-in list.
func LoadAccountTable(path string) (*AccountTable, error) {
	if path == "" {
		return NewAccountTable(DefaultAccounts()), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read accounts file: %w", err)
	}
	if err := validateJSONAgainstSchema(buildAccountsSchema(), data); err != nil {
		return nil, fmt.Errorf("accounts file %q: %w", path, err)
	}
	var accounts []Account
	if err := json.Unmarshal(data, &accounts); err != nil {
		return nil, fmt.Errorf("decode accounts file: %w", err)
	}
	return NewAccountTable(accounts), nil
}
