package model

// Brand is a payment card network.
type Brand string

const (
	BrandVisa            Brand = "Visa"
	BrandMastercard      Brand = "Mastercard"
	BrandAmericanExpress Brand = "American Express"
	BrandDiscover        Brand = "Discover"
	BrandDinersClub      Brand = "Diners CLub"
	BrandJCB             Brand = "JCB"
	BrandUnionPay        Brand = "UnionPLay"
	BrandRuPay           Brand = "RuPlay"
	BrandOther           Brand = "Other"
)

// Card is a stored payment card. Expiry month values look like "March (03)".
type Card struct {
	ID             string `json:"_id"`
	UserID         string `json:"userId"`
	Name           string `json:"name"`
	CardHolderName string `json:"cardHolderName"`
	CardNumber     string `json:"cardNumber"`
	ExpiredMonth   string `json:"expiredMonth"`
	ExpiredYear    string `json:"expiredYear"`
	CardCode       string `json:"cardCode"`
	Brand          Brand  `json:"brand"`
	Favorite       bool   `json:"favorite"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

// CardInput is the body of card create and update requests.
type CardInput struct {
	Name           string `json:"name"`
	CardHolderName string `json:"cardHolderName"`
	CardNumber     string `json:"cardNumber"`
	ExpiredMonth   string `json:"expiredMonth,omitempty"`
	ExpiredYear    string `json:"expiredYear,omitempty"`
	CardCode       string `json:"cardCode"`
	Brand          Brand  `json:"brand,omitempty"`
	Favorite       bool   `json:"favorite"`
}
