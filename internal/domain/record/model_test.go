package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFromData(t *testing.T) {
	tests := []struct {
		name             string
		ref              string
		data             Data
		expectedKeywords []string
	}{
		{
			name: "all fields present",
			ref:  "QmTestHash1",
			data: Data{
				PatientID:   "P1",
				DoctorID:    "D1",
				Type:        TypeLabReport,
				Description: "Blood panel",
				Date:        "2025-01-01",
			},
			expectedKeywords: []string{"p1", "d1", "lab_report", "blood panel", "2025-01-01"},
		},
		{
			name: "empty fields are skipped",
			ref:  "QmTestHash2",
			data: Data{
				PatientID: "P2",
				Type:      TypeImaging,
				Date:      "2025-01-02",
			},
			expectedKeywords: []string{"p2", "imaging", "2025-01-02"},
		},
		{
			name:             "no fields yields empty projection",
			ref:              "QmTestHash3",
			data:             Data{},
			expectedKeywords: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := NewFromData(tt.ref, tt.data)

			assert.Equal(t, tt.ref, rec.ID)
			assert.Equal(t, tt.data.PatientID, rec.PatientID)
			assert.Equal(t, tt.data.DoctorID, rec.DoctorID)
			assert.Equal(t, tt.data.Type, rec.Type)
			assert.Equal(t, tt.expectedKeywords, rec.Keywords)
		})
	}
}

func TestMedicalRecord_SearchText(t *testing.T) {
	rec := NewFromData("QmTestHash", Data{
		PatientID:   "P1",
		DoctorID:    "D1",
		Type:        TypeLabReport,
		Description: "Blood panel",
		Date:        "2025-01-01",
	})

	assert.Equal(t, "p1 d1 lab_report blood panel 2025-01-01", rec.SearchText())
}

func TestMedicalRecord_Ownership(t *testing.T) {
	rec := &MedicalRecord{PatientID: "P1", DoctorID: "D1"}

	assert.True(t, rec.OwnedByPatient("P1"))
	assert.False(t, rec.OwnedByPatient("P2"))
	assert.True(t, rec.OwnedByDoctor("D1"))
	assert.False(t, rec.OwnedByDoctor("D2"))
}

func TestRecordType_Validate(t *testing.T) {
	for _, typ := range []RecordType{TypePrescription, TypeLabReport, TypeImaging, TypeClinicalNotes, TypeOther} {
		assert.NoError(t, typ.Validate())
	}

	assert.Error(t, RecordType("xray").Validate())
	assert.Error(t, RecordType("").Validate())
}
