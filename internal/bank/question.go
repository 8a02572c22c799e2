package bank

// maxAnswers is the number of answer choices a well-formed question carries.
const maxAnswers = 4

// AnswerSet is the ordered answer choices of one question together with the
// index of the correct one. The pair is a single unit: any consumer that
// reorders or filters Choices must remap Correct in the same step.
type AnswerSet struct {
	// Choices holds up to four answer strings in document order.
	Choices []string `json:"choices"`
	// Correct is the zero-based index of the marked answer. It is captured
	// at scan time and defaults to 0 when no marker was found.
	Correct int `json:"correct"`
	// MarkerFound reports whether the correct-answer marker was actually
	// seen, so a defaulted Correct of 0 can be told apart from a marked
	// first answer.
	MarkerFound bool `json:"marker_found"`
}

// Question is one recovered exam question. Records are immutable once
// assembled; shuffling for quiz sessions is the consumer's business.
type Question struct {
	// Number is the identifier parsed from the fixed 4-digit prefix of Text.
	Number int `json:"number"`
	// Text is the full question text, prefix included.
	Text           string         `json:"question"`
	Answers        AnswerSet      `json:"answers"`
	Category       Category       `json:"category"`
	LicenseClasses []LicenseClass `json:"license_classes"`
	// ImageURL is the optional illustration reference, verbatim from the
	// markup; empty when the question has no image.
	ImageURL string `json:"image_url,omitempty"`
}

// RowError records one data row that could not be assembled into a Question.
type RowError struct {
	// Row is the 1-based worksheet row number (the header is row 1).
	Row   int    `json:"row"`
	Error string `json:"error"`
}

// Bank is the ordered collection of questions recovered from one worksheet,
// plus the rows that failed assembly. A failed row never discards the rest
// of the bank.
type Bank struct {
	Questions []Question `json:"questions"`
	RowErrors []RowError `json:"row_errors,omitempty"`
}
