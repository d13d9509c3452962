package model

// Category groups stored credentials.
type Category string

const (
	CategoryWork     Category = "Work"
	CategoryPersonal Category = "Personal"
	CategorySocial   Category = "Social"
	CategoryBanking  Category = "Banking"
	CategoryOther    Category = "Other"
	CategoryNone     Category = "No category"
)

// Item is a stored credential.
type Item struct {
	ID        string   `json:"_id"`
	UserID    string   `json:"userId"`
	Name      string   `json:"name"`
	Username  string   `json:"username"`
	Password  string   `json:"password"`
	Category  Category `json:"category"`
	URL       string   `json:"url,omitempty"`
	Favorite  bool     `json:"favorite"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
}

// ItemInput is the body of item create and update requests.
type ItemInput struct {
	Name     string   `json:"name"`
	Username string   `json:"username"`
	Password string   `json:"password"`
	Category Category `json:"category,omitempty"`
	URL      string   `json:"url,omitempty"`
	Favorite bool     `json:"favorite"`
}
