package presentation

const (
	AuthKey      = "Authorization"
	SignatureKey = "X-Signature"
	AuthScheme   = "Ethereum "
	CidParam     = "cid"

	ActionApproveProvider = "approve-provider"
	ActionSetRentalRoles  = "set-rental-roles"

	RootText   = "Disk Rental Backend"
	HealthText = "OK"
)
