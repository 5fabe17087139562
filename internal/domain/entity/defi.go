package entity

// PositionType is the kind of protocol a DeFi position was detected on.
type PositionType string

const (
	PositionDEX     PositionType = "dex"
	PositionLending PositionType = "lending"
	PositionStaking PositionType = "staking"
	PositionVault   PositionType = "vault"
)

// DeFiPosition summarizes how often a wallet called into a known protocol.
// It is derived from transaction history, not from on-chain position state.
type DeFiPosition struct {
	Protocol        string       `json:"protocol"`
	Type            PositionType `json:"type"`
	Interactions    int          `json:"interactions"`
	LastInteraction *string      `json:"lastInteraction"`
}

// ProtocolInfo describes a known protocol contract.
type ProtocolInfo struct {
	Name string       `json:"name"`
	Type PositionType `json:"type"`
}
