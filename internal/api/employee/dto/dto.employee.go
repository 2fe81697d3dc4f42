package dto

// LoginInput is the login payload.
type LoginInput struct {
	LoginName string `json:"loginName" validate:"required"`
	Password  string `json:"password" validate:"required"`
}

// LoginResult carries the issued token plus the display identity.
type LoginResult struct {
	Token       string `json:"token"`
	EmployeeID  string `json:"employeeId"`
	Name        string `json:"name"`
	AccessLevel string `json:"accessLevel"`
}

// ChangePasswordInput is the change-password payload for the logged-in
// employee.
type ChangePasswordInput struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=4"`
}

// RowError is one row-scoped import failure.
type RowError struct {
	RowNumber int    `json:"rowNumber"`
	Reason    string `json:"reason"`
}

// ImportResult summarizes one spreadsheet import.
type ImportResult struct {
	TotalRows     int        `json:"totalRows"`
	ImportedCount int        `json:"importedCount"`
	Errors        []RowError `json:"errors,omitempty"`
	Warnings      []RowError `json:"warnings,omitempty"`
	// ErrorText is the joined human-readable transcript, one line per error.
	ErrorText string `json:"errorText,omitempty"`
}
