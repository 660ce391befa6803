package wire

import "strings"

// EncodeWord frames w as a length-prefixed word: the length prefix of its
// UTF-8 byte length followed by the bytes themselves.
func EncodeWord(w string) []byte {
	b := []byte(w)
	out := make([]byte, 0, 5+len(b))
	out = append(out, EncodeLength(uint32(len(b)))...)
	out = append(out, b...)
	return out
}

// EncodeSentence frames words as a full request sentence: each word
// length-prefixed in order, followed by the zero-length terminator word.
func EncodeSentence(words ...string) []byte {
	var out []byte
	for _, w := range words {
		out = append(out, EncodeWord(w)...)
	}
	out = append(out, 0x00)
	return out
}

// SplitAttribute splits a word of shape "=key=value" into its key and
// value. The key is the substring between the leading "=" and the next
// "="; the value is everything after that second "=" verbatim (so a
// value containing "=" round-trips). ok is false if w does not start
// with "=" or has no second "=".
func SplitAttribute(w string) (key, value string, ok bool) {
	if !strings.HasPrefix(w, "=") {
		return "", "", false
	}
	rest := w[1:]
	idx := strings.IndexByte(rest, '=')
	if idx < 0 {
		return "", "", false
	}
	return rest[:idx], rest[idx+1:], true
}
