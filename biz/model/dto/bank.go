package dto

type DashboardReq struct{}

type DashboardResp struct {
	User      Identity `json:"user"`
	AccountID int64    `json:"account_id"`
	Balance   string   `json:"balance"`
	Mode      string   `json:"mode"`
}

type TransactionsReq struct {
	Search string `query:"search" validate:"max=100"`
}

type TransactionsResp struct {
	Search       string        `json:"search"`
	Transactions []Transaction `json:"transactions"`
}

type Transaction struct {
	ID          int64  `json:"id"`
	Type        string `json:"type"`
	Beneficiary string `json:"beneficiary"`
	Amount      string `json:"amount"`
	Note        string `json:"note"`
	CreatedAt   int64  `json:"created_at"`
}

// TransferReq carries the amount as a decimal string, e.g. "40.00".
type TransferReq struct {
	Beneficiary string `json:"beneficiary" form:"beneficiary" validate:"required,max=255"`
	Amount      string `json:"amount" form:"amount" validate:"required,max=32"`
	Note        string `json:"note" form:"note" validate:"max=255"`
}

type TransferResp struct {
	Transaction Transaction `json:"transaction"`
	Balance     string      `json:"balance"`
}
