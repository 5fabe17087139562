package walletloader

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"wallet_intel/internal/app/port"
	"wallet_intel/internal/domain/entity"
)

// DefaultWalletFilePath is used when no path is given.
const DefaultWalletFilePath = "data/wallets.txt"

// WalletFileLoader implements the port.WalletProvider interface by loading addresses from a text file,
// one per line. Blank lines and lines starting with # are ignored.
type WalletFileLoader struct {
	filePath   string
	loggerInfo func(msg string, args ...any)
}

// NewWalletFileLoader creates a new WalletFileLoader.
func NewWalletFileLoader(filePath string, loggerInfo func(msg string, args ...any)) port.WalletProvider {
	if filePath == "" {
		filePath = DefaultWalletFilePath
	}
	return &WalletFileLoader{
		filePath:   filePath,
		loggerInfo: loggerInfo,
	}
}

// GetWallets reads Stacks addresses from the configured file path. Lines without
// an SP or SM prefix are skipped, duplicates are kept once in first-seen order.
func (l *WalletFileLoader) GetWallets() ([]entity.Wallet, error) {
	file, err := os.Open(l.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open wallet file %s: %w", l.filePath, err)
	}
	defer file.Close()

	wallets := make([]entity.Wallet, 0)
	seen := make(map[string]struct{})
	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !entity.HasStacksPrefix(line) {
			if l.loggerInfo != nil {
				l.loggerInfo("Skipping invalid Stacks address", "file", l.filePath, "line_number", lineNum, "address", line)
			}
			continue
		}
		if _, dup := seen[line]; dup {
			continue
		}
		seen[line] = struct{}{}
		wallets = append(wallets, entity.Wallet{Address: line})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error scanning wallet file %s: %w", l.filePath, err)
	}

	if l.loggerInfo != nil {
		l.loggerInfo("Wallets loaded successfully from file", "count", len(wallets), "path", l.filePath)
	}
	return wallets, nil
}
