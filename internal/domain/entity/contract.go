package entity

// ContractName is the artifact name of a deployed contract; ABI and artifact
// files are looked up by it.
type ContractName string

const (
	DiskRegistry    ContractName = "DiskRegistry"
	DiskMarketplace ContractName = "DiskMarketplace"
	FileRegistry    ContractName = "FileRegistry"
)

// Contracts lists every contract the relay knows, in deployment order.
var Contracts = []ContractName{DiskRegistry, DiskMarketplace, FileRegistry}
