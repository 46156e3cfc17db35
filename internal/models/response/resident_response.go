package response

// ResidentNameAndID is the reduced (name, id) view of a resident returned by
// listings and filters
type ResidentNameAndID struct {
	Name string `json:"name" gorm:"column:name" example:"Maria"`
	ID   uint   `json:"id" gorm:"column:id" example:"1"`
}

// CreateResidentResponse summarizes a newly persisted resident
type CreateResidentResponse struct {
	ID         uint   `json:"id" example:"1"`
	DocumentID string `json:"document_id" example:"5f0c6a36-8f0e-4b8e-9a43-0d6c6f8a2b11"`
	Name       string `json:"name" example:"Maria"`
	LastName   string `json:"last_name" example:"Silva"`
	Email      string `json:"email" example:"maria.silva@example.com"`
}

// ResidentResponse is the full resident view returned by the list-all endpoint
type ResidentResponse struct {
	ID          uint   `json:"id" example:"1"`
	DocumentID  string `json:"document_id" example:"5f0c6a36-8f0e-4b8e-9a43-0d6c6f8a2b11"`
	Name        string `json:"name" example:"Maria"`
	LastName    string `json:"last_name" example:"Silva"`
	NationalID  string `json:"national_id" example:"123.456.789-09"`
	Income      string `json:"income" example:"3500.00"`
	DateOfBirth string `json:"date_of_birth" example:"1990-01-15"`
	Email       string `json:"email" example:"maria.silva@example.com"`
	UserID      *uint  `json:"user_id,omitempty" example:"10"`
}
