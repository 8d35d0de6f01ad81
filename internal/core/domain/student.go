package domain

// Student is the minimal registry entry the fee ledger needs: enough to verify
// a student exists before assigning a fee. Enrollment, attendance and guardian
// data live elsewhere.
type Student struct {
	StudentID   string `json:"studentID"` // Primary Key (UUID)
	Name        string `json:"name"`
	Class       string `json:"class"`
	Section     string `json:"section"`
	AdmissionNo string `json:"admissionNo"`
	AuditFields
}
