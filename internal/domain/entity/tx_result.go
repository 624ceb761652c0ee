package entity

// TxResult describes a mined transaction.
type TxResult struct {
	Hash        string       `json:"hash"`
	BlockNumber uint64       `json:"block_number"`
	GasUsed     uint64       `json:"gas_used"`
	Contract    ContractName `json:"contract"`
	Method      string       `json:"method"`
}
