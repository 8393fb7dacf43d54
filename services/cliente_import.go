package services

import (
	"bytes"
	"fmt"
	"gestion_casos_go/models"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// Sheet and column layout of the client import workbook
const (
	sheetClientes = "Clientes"
)

var clienteHeaders = []string{"Código*", "Nombre*", "Apellido*", "Documento"}

// ImportResult contains the summary of the import process
type ImportResult struct {
	TotalProcessed int      `json:"total_procesados"`
	SuccessCount   int      `json:"creados"`
	SkippedCount   int      `json:"omitidos"`
	Errors         []string `json:"errores"`
}

// GenerarPlantillaClientes builds the Excel template clients are loaded from
func GenerarPlantillaClientes() (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetClientes)

	for i, header := range clienteHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetClientes, cell, header)
	}
	headerStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheetClientes, "A1", "D1", headerStyle)
	f.SetColWidth(sheetClientes, "A", "D", 20)

	// Example row
	f.SetCellValue(sheetClientes, "A2", "C001")
	f.SetCellValue(sheetClientes, "B2", "Luis")
	f.SetCellValue(sheetClientes, "C2", "Martínez")
	f.SetCellValue(sheetClientes, "D2", "10000002")

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write template: %w", err)
	}
	return buf, nil
}

// ImportarClientes loads CLIENTE rows from an xlsx workbook. Rows with a
// missing code or name are reported and skipped; codes already present in
// the store are skipped without touching the existing row.
func ImportarClientes(db *gorm.DB, reader io.Reader) (*ImportResult, error) {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := sheetClientes
	if idx, _ := f.GetSheetIndex(sheet); idx < 0 {
		// Fall back to the first sheet when the template was renamed
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	result := &ImportResult{Errors: []string{}}

	for i, row := range rows {
		if i == 0 {
			continue // header
		}

		cod := cellAt(row, 0)
		nom := cellAt(row, 1)
		ape := cellAt(row, 2)
		doc := cellAt(row, 3)

		// Ignore fully empty trailing rows
		if cod == "" && nom == "" && ape == "" && doc == "" {
			continue
		}

		result.TotalProcessed++

		if cod == "" || nom == "" || ape == "" {
			result.SkippedCount++
			result.Errors = append(result.Errors, fmt.Sprintf("Fila %d: código, nombre y apellido son obligatorios", i+1))
			continue
		}

		var count int64
		if err := db.Model(&models.Cliente{}).Where("CODCLIENTE = ?", cod).Count(&count).Error; err != nil {
			return nil, fmt.Errorf("failed to check client %s: %w", cod, err)
		}
		if count > 0 {
			result.SkippedCount++
			result.Errors = append(result.Errors, fmt.Sprintf("Fila %d: el cliente %s ya existe", i+1, cod))
			continue
		}

		cliente := models.Cliente{
			CodCliente: cod,
			NomCliente: nom,
			ApeCliente: ape,
			NDocumento: doc,
		}
		if err := db.Create(&cliente).Error; err != nil {
			return nil, fmt.Errorf("failed to create client %s: %w", cod, err)
		}
		result.SuccessCount++
	}

	return result, nil
}

func cellAt(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
