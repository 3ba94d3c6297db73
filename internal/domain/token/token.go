// Package token splits free text into lowercase search tokens.
package token

// Tokenize extracts maximal runs of ASCII letters and digits from text,
// lowercased. Everything else (punctuation, whitespace, symbols, non-ASCII)
// acts as a separator. No stemming, no stop words.
func Tokenize(text string) []string {
	var tokens []string
	start := -1
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = append(tokens, lower(text[start:i]))
			start = -1
		}
	}
	if start >= 0 {
		tokens = append(tokens, lower(text[start:]))
	}
	return tokens
}

// Set tokenizes text and returns the distinct tokens as a set.
func Set(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, t := range Tokenize(text) {
		set[t] = struct{}{}
	}
	return set
}

// lower lowercases an ASCII alphanumeric run without allocating when it is
// already lowercase.
func lower(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if b[j] >= 'A' && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}
			return string(b)
		}
	}
	return s
}
