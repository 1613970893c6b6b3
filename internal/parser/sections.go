package parser

// segmented holds the preamble (lines before any detected header) and the
// body lines buffered under each detected section header.
type segmented struct {
	preamble []string
	sections map[Section][]string
}

// segment scans merged lines top to bottom, buffering lines between one
// detected header and the next as that section's body.
func segment(lines []string) segmented {
	seg := segmented{sections: make(map[Section][]string)}
	var current Section
	inSection := false
	for _, line := range lines {
		if sec, ok := isSectionHeader(line); ok {
			current = sec
			inSection = true
			continue
		}
		if !inSection {
			seg.preamble = append(seg.preamble, line)
			continue
		}
		seg.sections[current] = append(seg.sections[current], line)
	}
	return seg
}
