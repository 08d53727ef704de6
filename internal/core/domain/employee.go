package domain

import (
	"github.com/google/uuid"
)

type Employee struct {
	ID           uuid.UUID     `json:"id"`
	Name         string        `json:"name"`
	Role         string        `json:"role"`
	Specialties  []string      `json:"specialties"`
	WorkSchedule *WorkSchedule `json:"workSchedule,omitempty"`
}
