package convert

import (
	"bankdemo/biz/dal/query"
	"bankdemo/biz/model/domain"
	"bankdemo/biz/model/dto"
	"bankdemo/biz/model/storage"
	"bankdemo/biz/util/money"
)

func RowToTransaction(r query.Row) *domain.Transaction {
	return &domain.Transaction{
		ID:          r.Int64("id"),
		AccountID:   r.Int64("account_id"),
		Type:        domain.TransactionType(r.String("type")),
		Beneficiary: r.String("beneficiary"),
		Amount:      money.Cents(r.Int64("amount")),
		Note:        r.String("note"),
		CreatedAt:   r.Time("created_at"),
	}
}

func RowToAccount(r query.Row) *domain.Account {
	return &domain.Account{
		ID:      r.Int64("id"),
		UserID:  r.Int64("user_id"),
		Balance: money.Cents(r.Int64("balance")),
	}
}

func MessageRecordToDomain(m *storage.MessageRecord, email string) *domain.Message {
	if m == nil {
		return nil
	}
	return &domain.Message{
		ID:        m.ID,
		UserID:    m.UserID,
		Email:     email,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}

func TransactionToDTO(t *domain.Transaction) dto.Transaction {
	return dto.Transaction{
		ID:          t.ID,
		Type:        string(t.Type),
		Beneficiary: t.Beneficiary,
		Amount:      t.Amount.String(),
		Note:        t.Note,
		CreatedAt:   t.CreatedAt.Unix(),
	}
}

func TransactionsToDTO(list []*domain.Transaction) []dto.Transaction {
	out := make([]dto.Transaction, 0, len(list))
	for _, t := range list {
		out = append(out, TransactionToDTO(t))
	}
	return out
}

func MessagesToDTO(list []*domain.Message) []dto.Message {
	out := make([]dto.Message, 0, len(list))
	for _, m := range list {
		out = append(out, dto.Message{
			ID:        m.ID,
			Email:     m.Email,
			Content:   m.Content,
			CreatedAt: m.CreatedAt.Unix(),
		})
	}
	return out
}
