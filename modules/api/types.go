package api

// ErrorResponse is the JSON body for all error replies.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// RefreshRequest carries a refresh token.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// AddItemRequest adds one unit of a product to a cart.
type AddItemRequest struct {
	ProductID string `json:"product_id"`
}

// UpdateQuantityRequest sets the quantity of a cart line.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// AskRequest carries a support chat question.
type AskRequest struct {
	Message string `json:"message"`
}
