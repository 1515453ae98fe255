package converter

import "time"

// SupplierModel представляет запись таблицы suppliers в PostgreSQL.
type SupplierModel struct {
	ID           string    `db:"id"`
	Position     int       `db:"position"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	Phone        string    `db:"phone"`
	Rating       int16     `db:"rating"`
	ShippingDays *int32    `db:"shipping_days"`
	Notes        string    `db:"notes"`
	CreatedAt    time.Time `db:"created_at"`
}

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID          string    `db:"id"`
	Position    int       `db:"position"`
	Name        string    `db:"name"`
	Cost        float64   `db:"cost"`
	Price       float64   `db:"price"`
	SupplierID  string    `db:"supplier_id"`
	Stock       string    `db:"stock"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

// OrderModel представляет запись таблицы orders в PostgreSQL.
type OrderModel struct {
	ID          string    `db:"id"`
	Position    int       `db:"position"`
	Customer    string    `db:"customer"`
	Email       string    `db:"email"`
	ProductID   string    `db:"product_id"`
	ProductName string    `db:"product_name"`
	UnitPrice   float64   `db:"unit_price"`
	UnitCost    float64   `db:"unit_cost"`
	Quantity    int32     `db:"quantity"`
	Amount      float64   `db:"amount"`
	Profit      float64   `db:"profit"`
	Status      string    `db:"status"`
	Address     string    `db:"address"`
	CreatedAt   time.Time `db:"created_at"`
}
