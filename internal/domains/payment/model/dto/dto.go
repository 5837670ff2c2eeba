package dto

import (
	"time"

	"inn/internal/domains/payment/model"
	"inn/shared"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	gModel "inn/shared/model"
	"inn/shared/timezone"

	"github.com/google/uuid"
)

type CreatePaymentRequest struct {
	ReservationID string `json:"reservation_id" validate:"required"`
	Amount        int64  `json:"amount"         validate:"required,min=1"`
	Method        string `json:"method"         validate:"required,oneof=cash card transfer"`
	Status        string `json:"status"         validate:"omitempty,oneof=pending paid refunded"`
}

func (c *CreatePaymentRequest) ToModel(user string) model.Payment {
	status := constant.PaymentStatusPending
	if c.Status != constant.Empty {
		status = c.Status
	}

	var paidAt *time.Time
	if status == constant.PaymentStatusPaid {
		now := timezone.Now()
		paidAt = &now
	}

	return model.Payment{
		ID:            uuid.NewString(),
		ReservationID: c.ReservationID,
		Amount:        c.Amount,
		Method:        c.Method,
		Status:        status,
		PaidAt:        paidAt,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdatePaymentRequest struct {
	Amount *int64 `db:"amount" json:"amount" validate:"omitempty,min=1"`
	Method string `db:"method" json:"method" validate:"omitempty,oneof=cash card transfer"`
	Status string `db:"status" json:"status" validate:"omitempty,oneof=pending paid refunded"`
}

type PaymentResponse struct {
	ID            string  `json:"id"`
	ReservationID string  `json:"reservation_id"`
	Amount        int64   `json:"amount"`
	Method        string  `json:"method"`
	Status        string  `json:"status"`
	PaidAt        *string `json:"paid_at"`
	gDto.Metadata
}

func (r *PaymentResponse) FromModel(model model.Payment) {
	r.ID = model.ID
	r.ReservationID = model.ReservationID
	r.Amount = model.Amount
	r.Method = model.Method
	r.Status = model.Status

	if model.PaidAt != nil {
		paidAt := timezone.Format(*model.PaidAt, constant.DateFormat)
		r.PaidAt = &paidAt
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetPaymentsResponse) FromModels(models []model.Payment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Payments = make([]PaymentResponse, len(models))
	for i, mod := range models {
		r.Payments[i].FromModel(mod)
	}
}
