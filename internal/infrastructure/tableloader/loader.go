package tableloader

import (
	"fmt"
	"os"
	"strings"

	"wallet_intel/internal/app/analysis"
	"wallet_intel/internal/app/port"
	"wallet_intel/internal/domain/entity"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// tablesFile is the on-disk override format. Sections left out keep their built-in values.
type tablesFile struct {
	BlueChip      []string                 `json:"blueChip"`
	Meme          []string                 `json:"meme"`
	DeFiFragments []string                 `json:"defiFragments"`
	Protocols     []analysis.ProtocolEntry `json:"protocols"`
	YieldAsset    string                   `json:"yieldAsset"`
}

var validPositionTypes = map[entity.PositionType]struct{}{
	entity.PositionDEX:     {},
	entity.PositionLending: {},
	entity.PositionStaking: {},
	entity.PositionVault:   {},
}

// TableFileLoader implements port.TablesProvider by reading an optional JSON file.
type TableFileLoader struct {
	filePath   string
	loggerInfo func(msg string, args ...any)
	loggerWarn func(msg string, args ...any)
}

// NewTableLoader creates a TableFileLoader. An empty path means the built-in tables.
func NewTableLoader(filePath string, loggerInfo func(msg string, args ...any), loggerWarn func(msg string, args ...any)) port.TablesProvider {
	return &TableFileLoader{
		filePath:   strings.TrimSpace(filePath),
		loggerInfo: loggerInfo,
		loggerWarn: loggerWarn,
	}
}

// GetTables returns the built-in tables merged with the file contents.
// A missing file falls back to the defaults, a malformed one is an error.
func (l *TableFileLoader) GetTables() (*analysis.ClassificationTables, error) {
	if l.filePath == "" {
		return analysis.DefaultTables(), nil
	}

	data, err := os.ReadFile(l.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			if l.loggerWarn != nil {
				l.loggerWarn("Classification tables file not found, using built-in tables", "path", l.filePath)
			}
			return analysis.DefaultTables(), nil
		}
		return nil, fmt.Errorf("failed to read tables file %s: %w", l.filePath, err)
	}

	var file tablesFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tables file %s: %w", l.filePath, err)
	}

	blueChip := analysis.DefaultBlueChipSymbols()
	if file.BlueChip != nil {
		blueChip = file.BlueChip
	}
	meme := analysis.DefaultMemeSymbols()
	if file.Meme != nil {
		meme = file.Meme
	}
	fragments := analysis.DefaultDeFiFragments()
	if file.DeFiFragments != nil {
		fragments = file.DeFiFragments
	}
	protocols := analysis.DefaultProtocols()
	if file.Protocols != nil {
		protocols = make([]analysis.ProtocolEntry, 0, len(file.Protocols))
		for _, p := range file.Protocols {
			if _, ok := validPositionTypes[p.Info.Type]; !ok || p.Contract == "" || p.Info.Name == "" {
				if l.loggerWarn != nil {
					l.loggerWarn("Skipping invalid protocol entry", "path", l.filePath, "contract", p.Contract, "type", p.Info.Type)
				}
				continue
			}
			protocols = append(protocols, p)
		}
	}

	if l.loggerInfo != nil {
		l.loggerInfo("Classification tables loaded from file",
			"path", l.filePath,
			"blue_chip", len(blueChip),
			"meme", len(meme),
			"defi_fragments", len(fragments),
			"protocols", len(protocols))
	}
	return analysis.NewClassificationTables(blueChip, meme, fragments, protocols, file.YieldAsset), nil
}
