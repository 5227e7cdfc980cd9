package domain

// Product is a catalog or user-defined item. Identity is ID alone; two
// products with equal display fields are different products when their IDs
// differ.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category"`
	Custom      bool   `json:"custom"`
}
