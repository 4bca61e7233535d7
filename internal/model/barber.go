package model

type BarberStatus string

const (
	BarberStatusActive   BarberStatus = "active"
	BarberStatusInactive BarberStatus = "inactive"
)

type Barber struct {
	Base
	Name      string       `db:"name" json:"name"`
	Phone     string       `db:"phone" json:"phone,omitempty"`
	Email     string       `db:"email" json:"email,omitempty"`
	Specialty string       `db:"specialty" json:"specialty,omitempty"`
	WorkStart TimeOfDay    `db:"work_start" json:"work_start"`
	WorkEnd   TimeOfDay    `db:"work_end" json:"work_end"`
	Status    BarberStatus `db:"status" json:"status"`
}

func (b *Barber) IsActive() bool {
	return b.Status == BarberStatusActive
}

type CreateBarberRequest struct {
	Name      string `json:"name" binding:"required" validate:"required,max=100"`
	Phone     string `json:"phone" validate:"omitempty,max=20"`
	Email     string `json:"email" validate:"omitempty,email"`
	Specialty string `json:"specialty" validate:"max=200"`
	WorkStart string `json:"work_start" validate:"omitempty,timeofday"`
	WorkEnd   string `json:"work_end" validate:"omitempty,timeofday"`
}
