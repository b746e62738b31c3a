package domain

// ContentKind classifies fetched content by its Content-Type header.
type ContentKind string

const (
	KindImage   ContentKind = "image"
	KindPDF     ContentKind = "pdf"
	KindUnknown ContentKind = "unknown"
)

// SourceDocument is the raw content fetched from one menu URL.
type SourceDocument struct {
	URL  string
	Kind ContentKind
	Data []byte
}

// SkippedURL records a URL that was dropped from a run and why. Skips never
// abort the batch.
type SkippedURL struct {
	URL    string `json:"url"`
	Reason string `json:"reason"`
}

// EncodedImage is one base64 PNG ready for the capability request. URLIndex
// and PageIndex preserve submission order across concurrent preparation.
type EncodedImage struct {
	URLIndex  int
	PageIndex int
	Base64PNG string
}
