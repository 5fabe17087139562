package port

import "wallet_intel/internal/app/analysis"

// TablesProvider supplies the classification tables used to categorize tokens and detect protocols.
type TablesProvider interface {
	GetTables() (*analysis.ClassificationTables, error)
}
