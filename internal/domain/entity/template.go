package entity

import "time"

// ContractTemplate is a free-form text/HTML document containing {{tag}}
// placeholders. Templates are never physically removed: deletion flips
// IsActive so historical documents remain reproducible by direct id.
type ContractTemplate struct {
	ID        int64
	Name      string
	Type      string // "residential" | "commercial".
	Content   string // Template body with {{tag}} placeholders.
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
