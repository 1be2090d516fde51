package models

type OrderLine struct {
	ProductID string  `json:"productId,omitempty"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type Order struct {
	ID             string      `json:"_id"`
	OrderID        string      `json:"orderId,omitempty"`
	CustomerID     string      `json:"customerId,omitempty"`
	SellerID       string      `json:"sellerId,omitempty"`
	Price          float64     `json:"price"`
	PaymentStatus  string      `json:"payment_status,omitempty"`
	DeliveryStatus string      `json:"delivery_status,omitempty"`
	ShippingInfo   string      `json:"shippingInfo,omitempty"`
	Products       []OrderLine `json:"products,omitempty"`
	Date           string      `json:"date,omitempty"`
}

func (o Order) EntityID() string { return o.ID }

type Message struct {
	ID         string `json:"_id"`
	SenderID   string `json:"senderId,omitempty"`
	SenderName string `json:"senderName,omitempty"`
	ReceiverID string `json:"receiverId,omitempty"`
	Message    string `json:"message"`
	CreatedAt  string `json:"createdAt,omitempty"`
}
