package tableloader

import (
	"os"
	"path/filepath"
	"testing"

	"wallet_intel/internal/app/analysis"
	"wallet_intel/internal/domain/entity"

	"github.com/stretchr/testify/require"
)

func writeTables(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tables.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestTableFileLoader(t *testing.T) {
	var warnings []string
	warn := func(msg string, args ...any) { warnings = append(warnings, msg) }

	t.Run("no path", func(t *testing.T) {
		tables, err := NewTableLoader("", nil, warn).GetTables()
		require.NoError(t, err)
		require.Equal(t, entity.CategoryMeme, tables.Categorize("WELSH", "SP1.welshcorgicoin"))
	})

	t.Run("missing file", func(t *testing.T) {
		warnings = nil
		tables, err := NewTableLoader(filepath.Join(t.TempDir(), "absent.json"), nil, warn).GetTables()
		require.NoError(t, err)
		require.Equal(t, analysis.DefaultYieldAsset, tables.YieldAsset())
		require.Len(t, warnings, 1)
	})

	t.Run("partial override", func(t *testing.T) {
		warnings = nil
		path := writeTables(t, `{
			"meme": ["doge"],
			"protocols": [
				{"contract": "SP9.zest-pool", "info": {"name": "Zest", "type": "lending"}},
				{"contract": "SP8.broken", "info": {"name": "Broken", "type": "farm"}}
			],
			"yieldAsset": "stSTX"
		}`)
		tables, err := NewTableLoader(path, nil, warn).GetTables()
		require.NoError(t, err)

		require.Equal(t, entity.CategoryMeme, tables.Categorize("DOGE", "SP1.doge"))
		require.Equal(t, entity.CategoryOther, tables.Categorize("WELSH", "SP1.welsh"))
		require.Equal(t, entity.CategoryBlueChip, tables.Categorize("sBTC", "SP1.sbtc-token"))
		require.Equal(t, "stSTX", tables.YieldAsset())

		info, ok := tables.DetectProtocol("SP9.zest-pool")
		require.True(t, ok)
		require.Equal(t, entity.ProtocolInfo{Name: "Zest", Type: entity.PositionLending}, info)
		_, ok = tables.DetectProtocol("SP8.broken")
		require.False(t, ok)
		_, ok = tables.DetectProtocol("SP1Y5YSTAHZ88XYK1VPDH24GY0HPX5J4JECTMY4A1.velar-v2-swap")
		require.False(t, ok)
		require.Len(t, warnings, 1)
	})

	t.Run("malformed file", func(t *testing.T) {
		_, err := NewTableLoader(writeTables(t, `{"meme": `), nil, warn).GetTables()
		require.Error(t, err)
	})
}
