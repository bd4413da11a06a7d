package dtos

type OrderItemInput struct {
	ProductID uint    `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required"`
	Note      *string `json:"note,omitempty"`
}

type CreateOrderInput struct {
	BranchID      uint             `json:"branch_id" binding:"required"`
	OrderType     string           `json:"order_type"`
	Platform      *string          `json:"platform,omitempty"`
	Note          *string          `json:"note,omitempty"`
	CustomerName  string           `json:"customer_name"`
	CustomerPhone string           `json:"customer_phone"`
	CustomerEmail *string          `json:"customer_email,omitempty"`
	CustomerAddr  *string          `json:"customer_address,omitempty"`
	Items         []OrderItemInput `json:"items" binding:"required"`
}

type ChangeStatusInput struct {
	Status string `json:"status" binding:"required"`
}
