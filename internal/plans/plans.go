// Package plans holds the subscription plan catalog the pricing page
// renders. Display data only — no checkout or billing exists; choosing a
// plan simply sets the held tier.
package plans

import "github.com/ceylonflix/ceylonflix/internal/entitlement"

// Feature is one line on a plan card.
type Feature struct {
	Text     string `json:"text"`
	Included bool   `json:"included"`
}

// Plan describes one subscription plan. Prices are in Sri Lankan rupees.
type Plan struct {
	Name         string           `json:"name"`
	Slug         string           `json:"slug"`
	Tier         entitlement.Tier `json:"tier"`
	Description  string           `json:"description"`
	MonthlyPrice int              `json:"monthly_price"`
	YearlyPrice  int              `json:"yearly_price"`
	Badge        string           `json:"badge,omitempty"`
	Popular      bool             `json:"popular"`
	Screens      int              `json:"screens"`
	Quality      string           `json:"quality"`
	Features     []Feature        `json:"features"`
}

// All lists the purchasable plans in ascending price order. The free tier
// has no plan card — it is the entry state, not a product.
var All = []Plan{
	{
		Name:         "Basic",
		Slug:         "basic",
		Tier:         entitlement.TierBasic,
		Description:  "Perfect for individual viewers on mobile",
		MonthlyPrice: 299,
		YearlyPrice:  2990,
		Screens:      1,
		Quality:      "SD (480p)",
		Features: []Feature{
			{Text: "Unlimited movies & TV shows", Included: true},
			{Text: "Watch on mobile & tablet", Included: true},
			{Text: "SD quality (480p)", Included: true},
			{Text: "1 screen at a time", Included: true},
			{Text: "Sinhala & Tamil subtitles", Included: true},
			{Text: "HD quality", Included: false},
			{Text: "Downloads for offline", Included: false},
			{Text: "Ad-free experience", Included: false},
		},
	},
	{
		Name:         "Standard",
		Slug:         "standard",
		Tier:         entitlement.TierStandard,
		Description:  "Great for couples and small families",
		MonthlyPrice: 599,
		YearlyPrice:  5990,
		Badge:        "Most Popular",
		Popular:      true,
		Screens:      2,
		Quality:      "Full HD (1080p)",
		Features: []Feature{
			{Text: "Unlimited movies & TV shows", Included: true},
			{Text: "Watch on any device", Included: true},
			{Text: "Full HD quality (1080p)", Included: true},
			{Text: "2 screens at a time", Included: true},
			{Text: "Sinhala & Tamil subtitles", Included: true},
			{Text: "Ad-free experience", Included: true},
			{Text: "Downloads for offline", Included: true},
			{Text: "4K Ultra HD", Included: false},
		},
	},
	{
		Name:         "Premium",
		Slug:         "premium",
		Tier:         entitlement.TierPremium,
		Description:  "The ultimate experience for the whole family",
		MonthlyPrice: 999,
		YearlyPrice:  9990,
		Screens:      4,
		Quality:      "4K Ultra HD + HDR",
		Features: []Feature{
			{Text: "Unlimited movies & TV shows", Included: true},
			{Text: "Watch on any device", Included: true},
			{Text: "4K Ultra HD + HDR", Included: true},
			{Text: "4 screens at a time", Included: true},
			{Text: "Sinhala & Tamil subtitles", Included: true},
			{Text: "Ad-free experience", Included: true},
			{Text: "Downloads for offline", Included: true},
			{Text: "Dolby Atmos audio", Included: true},
		},
	},
}

// PaymentMethods lists the display names the pricing page shows. Names
// only — no processor integration exists.
var PaymentMethods = []string{
	"Visa / Mastercard",
	"Dialog Genie",
	"FriMi",
	"PayHere",
	"Bank Transfer",
	"eZ Cash",
}

// BySlug returns the plan with the given slug.
func BySlug(slug string) (Plan, bool) {
	for _, p := range All {
		if p.Slug == slug {
			return p, true
		}
	}
	return Plan{}, false
}
