package constants

// Session role labels, matching the Accounts.role column values.
const (
	Buyer  = "BUYER"
	Seller = "SELLER"
	Agent  = "AGENT"
	Admin  = "ADMIN"
)

// PermissionRoles maps each permission to the roles allowed to perform it.
var PermissionRoles = map[string][]string{
	CreateProperty:  {Seller, Admin},
	PublishProperty: {Seller, Admin},
	EditProperty:    {Seller, Admin},
	CloseProperty:   {Seller, Admin},
	PlaceOffer:      {Buyer, Admin},
	WithdrawOffer:   {Buyer, Admin},
	RespondToOffer:  {Seller, Admin},
	RequestViewing:  {Buyer, Admin},
	ManageViewing:   {Buyer, Seller, Agent, Admin},
	SendMessage:     {Buyer, Seller, Agent, Admin},
	SearchListings:  {Buyer, Seller, Agent, Admin},
}

// AllowedRole returns true if role is in the list of allowed roles for the permission.
func AllowedRole(permission, role string) bool {
	roles, ok := PermissionRoles[permission]
	if !ok {
		return false
	}
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
