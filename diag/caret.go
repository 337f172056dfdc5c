package diag

// RenderCaret builds the clang-style single-line window for a token
// starting at startOffset with the given length inside buffer, plus the
// number of leading characters in the returned line that precede the
// token (where the caret line's tildes should start).
//
// Walks backward from the token's start until a newline or a run of
// >=10 spaces/tabs is found (the window starts just past it), then the
// same forward from the token's end. A side that reaches the start or
// end of the buffer with neither boundary (e.g. the very first line of a
// file with no such whitespace run) renders untrimmed.
func RenderCaret(buffer string, startOffset, length int) (line string, leadingOffset int) {
	n := len(buffer)
	if startOffset < 0 || startOffset > n {
		return "", 0
	}

	before := buffer[:startOffset]
	offset := startOffset
	if offset > 0 {
		run := 0
		for i := startOffset - 1; i >= 0; i-- {
			var c byte
			if i < n {
				c = buffer[i]
			}
			if c == ' ' || c == '\t' {
				run++
			} else {
				run = 0
			}
			if c == '\n' || run >= 10 {
				before = buffer[i+1+run-min(run, 1) : startOffset]
				offset = len(before)
				break
			}
		}
	}

	end := startOffset + length
	if end > n {
		end = n
	}
	tokenText := buffer[startOffset:end]

	after := buffer[end:]
	run := 0
	for j := end; j < n; j++ {
		c := buffer[j]
		if c == ' ' || c == '\t' {
			run++
		} else {
			run = 0
		}
		if c == '\n' || run >= 10 {
			after = buffer[end : j-run+min(run, 1)]
			break
		}
	}

	return before + tokenText + after, offset
}
