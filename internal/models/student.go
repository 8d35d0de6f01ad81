package models

// Student is the persistence shape of a student registry row.
type Student struct {
	StudentID   string `json:"studentID"`
	Name        string `json:"name"`
	Class       string `json:"class"`
	Section     string `json:"section"`
	AdmissionNo string `json:"admissionNo"`
	AuditFields
}
