package export

// Report defines tabular export content with a stable column order.
type Report struct {
	Title   string
	Columns []string
	Rows    [][]string
}

// Format identifies a supported report encoding.
type Format string

const (
	FormatCSV Format = "csv"
	FormatPDF Format = "pdf"
)

// ContentType returns the MIME type for the format.
func (f Format) ContentType() string {
	if f == FormatPDF {
		return "application/pdf"
	}
	return "text/csv"
}

// Extension returns the file extension for the format.
func (f Format) Extension() string {
	if f == FormatPDF {
		return "pdf"
	}
	return "csv"
}
