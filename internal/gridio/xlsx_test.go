package gridio

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"slotwise/internal/engine"
)

func buildWorkbook(t *testing.T, cells map[string]string, merges [][2]string) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for axis, value := range cells {
		require.NoError(t, f.SetCellValue("Sheet1", axis, value))
	}
	for _, m := range merges {
		require.NoError(t, f.MergeCell("Sheet1", m[0], m[1]))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestReadWorkbook(t *testing.T) {
	data := buildWorkbook(t, map[string]string{
		"A1": "Timetable",
		"A2": "DAY/TIME", "B2": "9:00-9:50", "C2": "9:50-10:40",
		"A3": "MON", "B3": "CS101 (L)",
	}, [][2]string{{"B3", "C3"}})

	grid, err := ReadWorkbook(bytes.NewReader(data))
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(grid.Rows), 3)
	assert.Equal(t, "Timetable", grid.Rows[0][0])
	assert.Equal(t, "9:00-9:50", grid.Rows[1][1])
	assert.Equal(t, "CS101 (L)", grid.Rows[2][1])

	require.Len(t, grid.Merges, 1)
	assert.Equal(t, engine.MergeSpan{StartRow: 2, StartCol: 1, EndRow: 2, EndCol: 2}, grid.Merges[0])
}

func TestReadWorkbook_NotAWorkbook(t *testing.T) {
	_, err := ReadWorkbook(bytes.NewReader([]byte("definitely not a zip")))
	assert.Error(t, err)
}
