package models

const (
	RoleAdmin  = "admin"
	RoleSeller = "seller"
)

// Seller account statuses.
const (
	SellerPending     = "pending"
	SellerActive      = "active"
	SellerDeactivated = "deactive"
)

type ShopInfo struct {
	ShopName    string `json:"shopName,omitempty"`
	Division    string `json:"division,omitempty"`
	District    string `json:"district,omitempty"`
	SubDistrict string `json:"sub_district,omitempty"`
}

type Seller struct {
	ID       string    `json:"_id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Role     string    `json:"role,omitempty"`
	Status   string    `json:"status"`
	Payment  string    `json:"payment,omitempty"`
	Method   string    `json:"method,omitempty"`
	Image    string    `json:"image,omitempty"`
	ShopInfo *ShopInfo `json:"shopInfo,omitempty"`
}

func (s Seller) EntityID() string { return s.ID }

// UserInfo is the "who am I" profile. Its Role field is informational only;
// authorization always uses the role carried by the token.
type UserInfo struct {
	ID       string    `json:"_id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Role     string    `json:"role,omitempty"`
	Status   string    `json:"status,omitempty"`
	Image    string    `json:"image,omitempty"`
	ShopInfo *ShopInfo `json:"shopInfo,omitempty"`
}
