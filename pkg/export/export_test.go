package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCSV(t *testing.T) {
	report := Report{
		Title:   "Enrollments",
		Columns: []string{"Student", "Course"},
		Rows: [][]string{
			{"Fatima", "Tajweed Basics"},
			{"Omar", "Quran Memorization"},
		},
	}

	data, err := RenderCSV(report)

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Student,Course", lines[0])
	assert.Equal(t, "Fatima,Tajweed Basics", lines[1])
}

func TestRenderCSVPadsShortRows(t *testing.T) {
	report := Report{
		Columns: []string{"Student", "Course", "Type"},
		Rows:    [][]string{{"Fatima"}},
	}

	data, err := RenderCSV(report)

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Equal(t, "Fatima,,", lines[1])
}

func TestRenderCSVRequiresColumns(t *testing.T) {
	_, err := RenderCSV(Report{})
	assert.Error(t, err)
}

func TestRenderPDFProducesDocument(t *testing.T) {
	report := Report{
		Title:   "Enrollments",
		Columns: []string{"Student", "Course"},
		Rows:    [][]string{{"Fatima", "Tajweed Basics"}},
	}

	data, err := RenderPDF(report)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestFormatMetadata(t *testing.T) {
	assert.Equal(t, "text/csv", FormatCSV.ContentType())
	assert.Equal(t, "csv", FormatCSV.Extension())
	assert.Equal(t, "application/pdf", FormatPDF.ContentType())
	assert.Equal(t, "pdf", FormatPDF.Extension())
}
