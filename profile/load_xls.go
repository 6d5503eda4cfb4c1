package profile

import (
	"log"

	"github.com/carbocation/pfx"
	"github.com/extrame/xls"
)

// ReadXLSTable loads a profile table from the first sheet of a legacy XLS
// workbook, the shape lab submissions commonly arrive in: a header row with
// the identifier column and one column per locus, then one row per sample.
// The workbook must be a local, uncompressed file.
func ReadXLSTable(path string) (*Table, error) {
	spreadsheet, err := xls.Open(path, "utf-8")
	if err != nil {
		return nil, pfx.Err(err)
	}

	if spreadsheet.NumSheets() < 1 {
		return nil, SchemaError{Reason: "workbook has no sheets"}
	}

	sheet := spreadsheet.GetSheet(0)
	if sheet == nil {
		return nil, SchemaError{Reason: "workbook sheet 0 was nil"}
	}

	headRow := sheet.Row(0)
	if headRow == nil {
		return nil, SchemaError{Reason: "workbook has no header row"}
	}

	head := make([]string, 0, headRow.LastCol()+1)
	for colID := 0; colID <= headRow.LastCol(); colID++ {
		head = append(head, headRow.Col(colID))
	}

	idCol, loci, err := parseHeader(head)
	if err != nil {
		return nil, err
	}

	t := &Table{Loci: loci, Records: make([]Record, 0, int(sheet.MaxRow))}

	var skippedBlankID int
	for rowID := 1; rowID <= int(sheet.MaxRow); rowID++ {
		row := sheet.Row(rowID)
		if row == nil {
			continue
		}

		// Rows may end early; trailing cells read as blank, which parses as
		// an untyped locus.
		fields := make([]string, len(head))
		for colID := 0; colID < len(head) && colID <= row.LastCol(); colID++ {
			fields[colID] = row.Col(colID)
		}

		rec, ok := recordFromRow(fields, idCol)
		if !ok {
			skippedBlankID++
			continue
		}

		t.Records = append(t.Records, rec)
	}

	if skippedBlankID > 0 {
		log.Println("Skipped", skippedBlankID, "workbook rows with a blank sample identifier")
	}

	return t, nil
}
