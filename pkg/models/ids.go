package models

// Identifiers are opaque strings of the form <prefix><unix-millis>. Each entity
// gets its own type so a branch id cannot be passed where a trade area id is
// expected.
type (
	ProductID   string
	ReviewID    string
	CategoryID  string
	UserID      string
	OrderID     string
	TradeAreaID string
	BranchID    string
	PromotionID string
)

// Id prefixes used when minting new identifiers.
const (
	PrefixProduct   = "p"
	PrefixCategory  = "c"
	PrefixOrder     = "o"
	PrefixReview    = "r"
	PrefixTradeArea = "ta"
	PrefixBranch    = "b"
	PrefixPromotion = "promo"
)
