package models

// PaymentKind selects which share of the reservation an invoice covers
type PaymentKind string

const (
	KindDownPayment PaymentKind = "dp"
	KindSettlement  PaymentKind = "settlement"
)

// CreateInvoiceRequest asks for a Snap payment link
type CreateInvoiceRequest struct {
	UserID int64       `json:"userId"`
	Kind   PaymentKind `json:"kind"`
}

// InvoiceResponse is the created Snap transaction
type InvoiceResponse struct {
	OrderID     string  `json:"orderId"`
	Token       string  `json:"token"`
	RedirectURL string  `json:"redirectUrl"`
	Amount      float64 `json:"amount"`
}

// NotificationPayload is the Midtrans HTTP notification body.
// Only the fields the handler acts on are mapped.
type NotificationPayload struct {
	OrderID           string `json:"order_id"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	PaymentType       string `json:"payment_type"`
}
