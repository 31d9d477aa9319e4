package record

import (
	"strings"
)

// MedicalRecord is one medical record known to the client. The ID is the
// content identifier assigned by the pinning service and doubles as the
// primary key in the local vault.
type MedicalRecord struct {
	ID          string     `json:"id"`
	PatientID   string     `json:"patientId"`
	DoctorID    string     `json:"doctorId"`
	Type        RecordType `json:"recordType"`
	Description string     `json:"description"`
	Date        string     `json:"date"`
	FileCID     string     `json:"fileIpfsHash,omitempty"`
	Timestamp   string     `json:"timestamp"`
	Keywords    []string   `json:"keywords,omitempty"`
}

// Data is the resolved payload of a record as it is stored behind a content
// identifier, before it is imported into the vault.
type Data struct {
	PatientID   string     `json:"patientId"`
	DoctorID    string     `json:"doctorId"`
	Type        RecordType `json:"recordType"`
	Description string     `json:"description"`
	Date        string     `json:"date"`
	FileCID     string     `json:"fileIpfsHash,omitempty"`
	Timestamp   string     `json:"timestamp"`
}

// NewFromData builds a MedicalRecord from a resolved payload. The keyword
// projection is always derived here so it can never go stale relative to the
// source fields at import time.
func NewFromData(ref string, data Data) *MedicalRecord {
	return &MedicalRecord{
		ID:          ref,
		PatientID:   data.PatientID,
		DoctorID:    data.DoctorID,
		Type:        data.Type,
		Description: data.Description,
		Date:        data.Date,
		FileCID:     data.FileCID,
		Timestamp:   data.Timestamp,
		Keywords:    deriveKeywords(data),
	}
}

// deriveKeywords lowers the searchable fields into the keyword projection.
// Field order is fixed; empty fields are skipped.
func deriveKeywords(data Data) []string {
	source := []string{
		data.PatientID,
		data.DoctorID,
		string(data.Type),
		data.Description,
		data.Date,
	}

	keywords := make([]string, 0, len(source))
	for _, s := range source {
		if s == "" {
			continue
		}
		keywords = append(keywords, strings.ToLower(s))
	}

	return keywords
}

// SearchText returns the space-joined keyword projection used for substring
// matching.
func (r *MedicalRecord) SearchText() string {
	return strings.Join(r.Keywords, " ")
}

// OwnedByPatient reports whether the record belongs to the given patient.
func (r *MedicalRecord) OwnedByPatient(patientID string) bool {
	return r.PatientID == patientID
}

// OwnedByDoctor reports whether the record was authored by the given doctor.
func (r *MedicalRecord) OwnedByDoctor(doctorID string) bool {
	return r.DoctorID == doctorID
}
