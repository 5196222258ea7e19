package spreadsheet

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func workbook(t *testing.T, rows [][]string) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, cell := range row {
			axis, err := excelize.CoordinatesToCellName(j+1, i+1)
			assert.NoError(t, err)
			assert.NoError(t, f.SetCellValue(sheet, axis, cell))
		}
	}

	buf, err := f.WriteToBuffer()
	assert.NoError(t, err)
	return buf
}

func TestReadFirstSheet(t *testing.T) {
	buf := workbook(t, [][]string{
		{"username", "name", "email"},
		{"alice", "alice smith", "alice@example.com"},
		{"bob", "bob brown", "bob@example.com"},
	})

	rows, err := ReadFirstSheet(buf)
	assert.NoError(t, err)
	assert.Len(t, rows, 2)

	assert.Equal(t, 2, rows[0].Number)
	assert.Equal(t, "alice", rows[0].Fields["username"])
	assert.Equal(t, "alice smith", rows[0].Fields["name"])

	assert.Equal(t, 3, rows[1].Number)
	assert.Equal(t, "bob@example.com", rows[1].Fields["email"])
}

func TestReadFirstSheet_HeaderOnly(t *testing.T) {
	buf := workbook(t, [][]string{
		{"username", "name", "email"},
	})

	rows, err := ReadFirstSheet(buf)
	assert.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReadFirstSheet_ShortRow(t *testing.T) {
	// trailing cells excelize drops entirely still surface as empty fields
	buf := workbook(t, [][]string{
		{"username", "name", "email"},
		{"alice"},
	})

	rows, err := ReadFirstSheet(buf)
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "alice", rows[0].Fields["username"])
	assert.Equal(t, "", rows[0].Fields["name"])
	assert.Equal(t, "", rows[0].Fields["email"])
}

func TestReadFirstSheet_TrimsHeader(t *testing.T) {
	buf := workbook(t, [][]string{
		{"  username  ", "name"},
		{"alice", "alice smith"},
	})

	rows, err := ReadFirstSheet(buf)
	assert.NoError(t, err)
	assert.Equal(t, "alice", rows[0].Fields["username"])
}

func TestReadFirstSheet_NotAWorkbook(t *testing.T) {
	rows, err := ReadFirstSheet(strings.NewReader("plain text, not a workbook"))
	assert.Error(t, err)
	assert.Nil(t, rows)
}

func TestReadLegacyFirstSheet_NotAWorkbook(t *testing.T) {
	rows, err := ReadLegacyFirstSheet(strings.NewReader("plain text, not a BIFF workbook"))
	assert.Error(t, err)
	assert.Nil(t, rows)
}

func TestReadLegacyFirstSheet_RejectsOOXML(t *testing.T) {
	// an .xlsx payload is a ZIP archive, not a compound document; the
	// BIFF reader must refuse it rather than return garbage rows
	buf := workbook(t, [][]string{
		{"username", "name"},
		{"alice", "alice smith"},
	})

	rows, err := ReadLegacyFirstSheet(bytes.NewReader(buf.Bytes()))
	assert.Error(t, err)
	assert.Nil(t, rows)
}
