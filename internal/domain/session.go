package domain

// ItemState tracks one scanned image through the session.
// Transitions: pending -> enriched | failed (terminal).
type ItemState string

const (
	ItemPending  ItemState = "pending"
	ItemEnriched ItemState = "enriched"
	ItemFailed   ItemState = "failed"
)

// ScanItem is one image's slot in a scan session
type ScanItem struct {
	SourceImageRef string         `json:"sourceImageRef"`
	RawText        string         `json:"rawText,omitempty"`
	Candidate      *WineCandidate `json:"candidate,omitempty"`
	State          ItemState      `json:"state"`
}

// ScanResult is the output of one batch scan. Candidates are positional:
// candidate i corresponds to image ref i, always, even for failed items.
type ScanResult struct {
	SessionID      string          `json:"sessionId"`
	Items          []ScanItem      `json:"items"`
	Candidates     []WineCandidate `json:"candidates"`
	FallbackActive bool            `json:"fallbackActive"`
}

// TextBlock is one region of recognized text returned by the external
// text-recognition collaborator
type TextBlock struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

// RecognitionResponse is the raw response for one image from the external
// text-recognition service
type RecognitionResponse struct {
	ImageRef string      `json:"imageRef"`
	Blocks   []TextBlock `json:"blocks"`
}
