package constants

const (
	CreateProperty  = "create_property"
	PublishProperty = "publish_property"
	EditProperty    = "edit_property"
	CloseProperty   = "close_property"
	PlaceOffer      = "place_offer"
	WithdrawOffer   = "withdraw_offer"
	RespondToOffer  = "respond_to_offer"
	RequestViewing  = "request_viewing"
	ManageViewing   = "manage_viewing"
	SendMessage     = "send_message"
	SearchListings  = "search_listings"
)
