package resume

import "strings"

// DOCExtractor recovers text from legacy Word binaries by looking for runs of
// printable bytes that start after "\x00\x00" and end before "\x00\x00\x00".
type DOCExtractor struct{}

func (DOCExtractor) Format() Format { return FormatDOC }

func (DOCExtractor) Extract(data []byte) Extraction {
	text := scanDOCRuns(data)
	if charCount(text) < MinTextChars {
		return Extraction{
			Format: FormatDOC,
			Text:   withNotice(NoticeDOCLowText, text),
			Status: StatusLowConfidence,
			Err:    ErrEmptyText,
		}
	}
	return Extraction{Format: FormatDOC, Text: text, Status: StatusOK}
}

// minDOCRun — короче этого блоки считаются мусором.
const minDOCRun = 6

func scanDOCRuns(data []byte) string {
	var (
		out   strings.Builder
		block strings.Builder
		in    bool
	)
	printable := func(b byte) bool { return b >= 32 && b <= 126 }

	for i := 0; i < len(data); i++ {
		if i > 2 && data[i-2] == 0 && data[i-1] == 0 && printable(data[i]) {
			in = true
		}
		if in && i+2 < len(data) && data[i] == 0 && data[i+1] == 0 && data[i+2] == 0 {
			in = false
			if block.Len() >= minDOCRun {
				out.WriteString(block.String())
				out.WriteByte('\n')
			}
			block.Reset()
		}
		if in && printable(data[i]) {
			block.WriteByte(data[i])
		}
	}
	return cleanASCII(out.String())
}
