package domain

// ItemState tells which side of the list a product is on.
type ItemState string

const (
	StateAbsent    ItemState = "absent"
	StatePending   ItemState = "pending"
	StatePurchased ItemState = "purchased"
)

// ListItem is one product with its quantity on either side of the list.
type ListItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// ListSnapshot is a read-only copy of the shopping list at one point in time.
type ListSnapshot struct {
	Pending    []ListItem `json:"pending"`
	Purchased  []ListItem `json:"purchased"`
	TotalCount int        `json:"totalCount"`
}
