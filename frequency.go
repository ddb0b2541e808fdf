package main

// FrequencyTable holds one occurrence count per alphabet row.
type FrequencyTable []int

// CountCharacters scans text once. Characters outside the alphabet are
// ignored.
func CountCharacters(text string, alphabet *Alphabet) FrequencyTable {
	counts := make(FrequencyTable, alphabet.Len())
	for _, c := range text {
		if row, ok := alphabet.Lookup(c); ok {
			counts[row]++
		}
	}
	return counts
}

func (f FrequencyTable) Count(row int) int {
	if row < 0 || row >= len(f) {
		return 0
	}
	return f[row]
}

// Total is the number of recognized characters.
func (f FrequencyTable) Total() int {
	total := 0
	for _, n := range f {
		total += n
	}
	return total
}

// Alpha returns the opacity of a row: count*scale saturated at 255.
func (f FrequencyTable) Alpha(row, scale int) uint8 {
	v := f.Count(row) * scale
	if v > 255 {
		v = 255
	}
	if v < 0 {
		v = 0
	}
	return uint8(v)
}
