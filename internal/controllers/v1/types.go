package v1

import (
	et_uuid "github.com/ratnesh1929/Expense-Tracker/internal/uuid"
)

type URIID struct {
	ID et_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type QueryMonth struct {
	Month string `form:"month" example:"2024-03"` // Year and month in YYYY-MM format
}
