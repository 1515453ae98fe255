package converter

import "time"

// Модели повторяют формат записей localStorage, из которого данные могут быть перенесены как есть.

type ProductRedisModel struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Cost        float64   `json:"cost"`
	Price       float64   `json:"price"`
	SupplierID  string    `json:"supplierId"`
	Stock       string    `json:"stock"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

type SupplierRedisModel struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Rating       int       `json:"rating"`
	ShippingDays *int      `json:"shippingDays"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"createdAt"`
}

type OrderRedisModel struct {
	ID          string    `json:"id"`
	Customer    string    `json:"customer"`
	Email       string    `json:"email"`
	ProductID   string    `json:"productId"`
	ProductName string    `json:"productName"`
	UnitPrice   float64   `json:"unitPrice"`
	UnitCost    float64   `json:"unitCost"`
	Quantity    int       `json:"quantity"`
	Amount      float64   `json:"amount"`
	Profit      float64   `json:"profit"`
	Status      string    `json:"status"`
	Address     string    `json:"address"`
	CreatedAt   time.Time `json:"createdAt"`
}
