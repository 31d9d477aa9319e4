package record

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"medvault/internal/domain/record"
)

var (
	listPatient string
	listDoctor  string
	listFormat  string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List vault records",
	Long: `Lists the records in the local vault that the current user is allowed
to see. Use --patient or --doctor to narrow the listing to one party.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		var records []*record.MedicalRecord
		switch {
		case listPatient != "":
			records = app.RecordsByPatient(listPatient)
		case listDoctor != "":
			records = app.RecordsByDoctor(listDoctor)
		default:
			records = app.VisibleRecords()
		}

		switch listFormat {
		case "json":
			return printRecordsJSON(records)
		case "table":
			return printRecordsTable(records)
		default:
			return printRecordsSimple(records)
		}
	},
}

func init() {
	listCmd.Flags().StringVar(&listPatient, "patient", "", "only records for this patient")
	listCmd.Flags().StringVar(&listDoctor, "doctor", "", "only records by this doctor")
	listCmd.Flags().StringVar(&listFormat, "format", "simple", "output format: simple, table or json")
}

func printRecordsSimple(records []*record.MedicalRecord) error {
	if len(records) == 0 {
		fmt.Println("No records found")
		return nil
	}

	fmt.Printf("Found %d record(s)\n\n", len(records))

	for i, rec := range records {
		fmt.Printf("%d. %s (%s)\n", i+1, rec.Type.DisplayName(), rec.Date)
		fmt.Printf("   ID: %s | Patient: %s | Doctor: %s\n", rec.ID, rec.PatientID, rec.DoctorID)
		if rec.Description != "" {
			fmt.Printf("   %s\n", truncate(rec.Description, 70))
		}
		fmt.Println()
	}

	return nil
}

func printRecordsTable(records []*record.MedicalRecord) error {
	if len(records) == 0 {
		fmt.Println("No records found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tPatient\tDoctor\tType\tDate\tDescription\t\n")
	fmt.Fprintf(w, "---\t---\t---\t---\t---\t---\t\n")

	for _, rec := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t\n",
			truncate(rec.ID, 16),
			rec.PatientID,
			rec.DoctorID,
			rec.Type,
			rec.Date,
			truncate(rec.Description, 30))
	}

	return w.Flush()
}

func printRecordsJSON(records []*record.MedicalRecord) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
