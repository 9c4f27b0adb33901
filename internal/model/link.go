package model

// Link is a single href found in an HTML file.
type Link struct {
	// Original is the href exactly as written in the source file.
	// Reports always show this form so authors can search for it.
	Original string `json:"href"`

	// Normalized is the href after fragment removal, base URL stripping and
	// relative path resolution. Classification works on this form.
	Normalized string `json:"normalized"`
}

// FileReport lists the bad links found in one HTML file.
// Only files with at least one bad link get a FileReport.
type FileReport struct {
	// File is the checked file.
	File FileRecord `json:"file"`

	// BadLinks are the surviving links in document order.
	BadLinks []Link `json:"bad_links"`
}

// FileError records a file that could not be read when the checker is
// configured to continue past read failures.
type FileError struct {
	// File is the file that failed.
	File FileRecord `json:"file"`

	// Err is the underlying error.
	Err error `json:"-"`

	// Message is Err rendered as text for serialization.
	Message string `json:"error"`
}

// NewFileError creates a FileError for the given file.
func NewFileError(file FileRecord, err error) FileError {
	return FileError{
		File:    file,
		Err:     err,
		Message: err.Error(),
	}
}
