package entity

// NFTHolding is one collection held by a wallet. TokenID is a representative
// token from the collection, Count the number of items held in it.
type NFTHolding struct {
	Collection     string `json:"collection"`
	CollectionName string `json:"collectionName"`
	TokenID        int64  `json:"tokenId"`
	Count          int    `json:"count"`
}
