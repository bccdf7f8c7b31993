package models

// Reward is a redeemable loyalty reward.
type Reward struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	PointsCost  int    `json:"pointsCost"`
	Category    string `json:"category"`
	IsAvailable bool   `json:"isAvailable"`
}

// LoyaltyTransaction is a single earn/redeem ledger entry.
type LoyaltyTransaction struct {
	ID          string `json:"id"`
	Type        string `json:"type"` // "earned" or "redeemed"
	Points      int    `json:"points"`
	Description string `json:"description"`
	Date        string `json:"date"` // ISO-8601
}

// Loyalty is the whole per-user loyalty document. It is read and replaced as
// one unit; there is no finer-grained update.
type Loyalty struct {
	CurrentPoints      int                  `json:"currentPoints"`
	TotalEarned        int                  `json:"totalEarned"`
	CurrentTier        string               `json:"currentTier"`
	NextTier           string               `json:"nextTier"`
	PointsToNextTier   int                  `json:"pointsToNextTier"`
	Rewards            []Reward             `json:"rewards"`
	RecentTransactions []LoyaltyTransaction `json:"recentTransactions"`
}
