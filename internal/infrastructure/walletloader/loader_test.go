package walletloader

import (
	"os"
	"path/filepath"
	"testing"

	"wallet_intel/internal/domain/entity"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestWalletFileLoader_GetWallets(t *testing.T) {
	t.Run("valid and invalid lines", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "wallets.txt")
		body := "# treasury\n" +
			"SP2J6ZY48GV1EZ5V2V5RB9MP66SW86PYKKNRV9EJ7\n" +
			"\n" +
			"  SM3VDXK3WZZSA84XXFKAFAF15NNZX32CTSG82JFQ4  \n" +
			"0x742d35Cc6634C0532925a3b844Bc454e4438f44e\n" +
			"sp2j6zy48gv1ez5v2v5rb9mp66sw86pykknrv9ej7\n" +
			"SP2J6ZY48GV1EZ5V2V5RB9MP66SW86PYKKNRV9EJ7\n"
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

		var skipped []any
		loader := NewWalletFileLoader(path, func(msg string, args ...any) {
			if msg == "Skipping invalid Stacks address" {
				skipped = append(skipped, args[len(args)-1])
			}
		})

		got, err := loader.GetWallets()
		require.NoError(t, err)
		want := []entity.Wallet{
			{Address: "SP2J6ZY48GV1EZ5V2V5RB9MP66SW86PYKKNRV9EJ7"},
			{Address: "SM3VDXK3WZZSA84XXFKAFAF15NNZX32CTSG82JFQ4"},
		}
		require.Equal(t, "", cmp.Diff(want, got))
		require.Equal(t, []any{"0x742d35Cc6634C0532925a3b844Bc454e4438f44e", "sp2j6zy48gv1ez5v2v5rb9mp66sw86pykknrv9ej7"}, skipped)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewWalletFileLoader(filepath.Join(t.TempDir(), "none.txt"), nil).GetWallets()
		require.Error(t, err)
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "wallets.txt")
		require.NoError(t, os.WriteFile(path, nil, 0o600))
		got, err := NewWalletFileLoader(path, nil).GetWallets()
		require.NoError(t, err)
		require.Empty(t, got)
	})
}
