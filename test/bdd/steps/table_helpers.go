package steps

import (
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/cucumber/messages/go/v21"
)

// getCellValue returns the cell of row under the named header column
func getCellValue(table *godog.Table, row *messages.PickleTableRow, columnName string) string {
	if len(table.Rows) == 0 {
		return ""
	}
	for i, cell := range table.Rows[0].Cells {
		if cell.Value == columnName && i < len(row.Cells) {
			return row.Cells[i].Value
		}
	}
	return ""
}

// tableToMap reads a two-column | key | value | table, header row included
func tableToMap(table *godog.Table) map[string]string {
	values := make(map[string]string)
	for i, row := range table.Rows {
		if i == 0 {
			continue
		}
		values[getCellValue(table, row, "setting")+getCellValue(table, row, "field")] = getCellValue(table, row, "value")
	}
	return values
}

// splitList splits a comma-separated step argument, dropping blanks
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func secondsDuration(seconds int) time.Duration {
	return time.Duration(seconds) * time.Second
}
