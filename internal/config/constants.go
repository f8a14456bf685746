package config

// Application constants - all hardcoded values for the piigen tool
const (
	// Application Info
	AppName    = "piigen"
	AppVersion = "1.0.0"

	// Output file naming
	FilenamePrefix = "customer_responses"

	// Average output bytes one record contributes when the batch is split
	// across the four formats. Calibrated empirically; the derived count is
	// guidance, not a guarantee - actual size depends on field length
	// variance and per-format overhead.
	AverageBytesPerRecord = 125

	// Batches at or above this count trigger an explicit confirmation
	// prompt before generation (roughly a 5MB-equivalent batch).
	LargeBatchThreshold = 11700

	// Directory names (relative to the output base directory)
	DefaultBaseDir = "Testing_PII_Data"
	ExcelSubdir    = "Excel Files"
	WordSubdir     = "Word Files"
	PDFSubdir      = "PDF Files"
	TextSubdir     = "Text Files"
	DefaultLogsDir = "logs"
)
