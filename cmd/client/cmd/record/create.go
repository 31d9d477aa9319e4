package record

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"medvault/internal/domain/record"
)

var (
	createPatient     string
	createDoctor      string
	createType        string
	createDescription string
	createDate        string
	createFile        string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create and pin a new record",
	Long: `Creates a new medical record, pins its payload through the pinning
service and adds it to the local vault. When --file is given the attachment is
validated and pinned first; its content reference is embedded in the record.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		data := record.Data{
			PatientID:   createPatient,
			DoctorID:    createDoctor,
			Type:        record.RecordType(createType),
			Description: createDescription,
			Date:        createDate,
		}

		ref, err := app.CreateRecord(cmd.Context(), data, createFile)
		if err != nil {
			return fmt.Errorf("create record: %w", err)
		}

		color.Green("✓ Record pinned as %s", ref)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createPatient, "patient", "", "patient identifier")
	createCmd.Flags().StringVar(&createDoctor, "doctor", "", "doctor identifier")
	createCmd.Flags().StringVar(&createType, "type", string(record.TypeOther), "record type: prescription, lab_report, imaging, clinical_notes or other")
	createCmd.Flags().StringVar(&createDescription, "description", "", "free-form description")
	createCmd.Flags().StringVar(&createDate, "date", "", "record date, e.g. 2025-01-31")
	createCmd.Flags().StringVar(&createFile, "file", "", "path to an attachment to pin alongside the record")
	_ = createCmd.MarkFlagRequired("patient")
	_ = createCmd.MarkFlagRequired("doctor")
}
