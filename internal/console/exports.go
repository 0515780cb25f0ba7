package console

import (
	"context"
	"fmt"
	"os"
)

// ExportFHIR writes the patient's FHIR bundle to path, or to the console output
// when path is empty or "-".
func (a *App) ExportFHIR(ctx context.Context, patientID, path string) Result {
	return a.run("export.fhir", func() (string, error) {
		bundle, err := a.svc.Export.PatientBundle(ctx, patientID)
		if err != nil {
			return "", err
		}
		if path == "" || path == "-" {
			if _, err := fmt.Fprintln(a.out, string(bundle)); err != nil {
				return "", err
			}
			return "FHIR bundle exported", nil
		}
		if err := writeFile(path, bundle); err != nil {
			return "", err
		}
		return "FHIR bundle written to " + path, nil
	})
}

func (a *App) ExportRegistry(ctx context.Context, path string) Result {
	return a.run("export.registry", func() (string, error) {
		data, err := a.svc.Export.RegistryWorkbook(ctx)
		if err != nil {
			return "", err
		}
		if err := writeFile(path, data); err != nil {
			return "", err
		}
		return "Registry written to " + path, nil
	})
}

func (a *App) BillStatement(ctx context.Context, patientID, path string) Result {
	return a.run("bill.statement", func() (string, error) {
		data, err := a.svc.Export.BillStatement(ctx, patientID)
		if err != nil {
			return "", err
		}
		if err := writeFile(path, data); err != nil {
			return "", err
		}
		return "Bill statement written to " + path, nil
	})
}

func writeFile(path string, data []byte) error {
	if path == "" {
		return fmt.Errorf("an output file is required")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
