package record

import (
	"fmt"

	"github.com/danielgtaylor/huma/v2"
)

type RecordType string

const (
	TypePrescription  RecordType = "prescription"
	TypeLabReport     RecordType = "lab_report"
	TypeImaging       RecordType = "imaging"
	TypeClinicalNotes RecordType = "clinical_notes"
	TypeOther         RecordType = "other"
)

func (RecordType) Schema() huma.Schema {
	return huma.Schema{
		Type: "string",
		Enum: []any{
			string(TypePrescription),
			string(TypeLabReport),
			string(TypeImaging),
			string(TypeClinicalNotes),
			string(TypeOther),
		},
		Description: "Kind of medical record",
		Examples:    []any{TypeLabReport},
	}
}

// Validate implements the huma.Validatable interface.
func (t RecordType) Validate() error {
	switch t {
	case TypePrescription, TypeLabReport, TypeImaging, TypeClinicalNotes, TypeOther:
		return nil
	}
	return fmt.Errorf("invalid record type: %s", t)
}

// String returns the string representation of the type.
func (t RecordType) String() string {
	return string(t)
}

// DisplayName returns a human readable name for the type.
func (t RecordType) DisplayName() string {
	switch t {
	case TypePrescription:
		return "Prescription"
	case TypeLabReport:
		return "Lab report"
	case TypeImaging:
		return "Imaging"
	case TypeClinicalNotes:
		return "Clinical notes"
	case TypeOther:
		return "Other"
	default:
		return "Unknown type"
	}
}
