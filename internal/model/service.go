package model

type ServiceStatus string

const (
	ServiceStatusActive   ServiceStatus = "active"
	ServiceStatusInactive ServiceStatus = "inactive"
)

type Service struct {
	Base
	Name        string        `db:"name" json:"name"`
	Description string        `db:"description" json:"description,omitempty"`
	Duration    int           `db:"duration_minutes" json:"duration_minutes"` // in minutes
	Price       float64       `db:"price" json:"price"`
	Status      ServiceStatus `db:"status" json:"status"`
}

func (s *Service) IsActive() bool {
	return s.Status == ServiceStatusActive
}

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required" validate:"required,max=100"`
	Description string  `json:"description" validate:"max=1000"`
	Duration    int     `json:"duration_minutes" validate:"omitempty,gt=0"`
	Price       float64 `json:"price" validate:"gte=0"`
}
