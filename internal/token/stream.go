package token

// Stream is a read cursor over a token slice. A well-formed slice ends in an
// EOF token; reading past the end keeps returning EOF.
type Stream struct {
	toks []Token
	pos  int
}

func NewStream(toks []Token) *Stream {
	return &Stream{toks: toks}
}

// Peek returns the next token without consuming it.
func (s *Stream) Peek() Token {
	if s.pos >= len(s.toks) {
		return Token{Type: EOF}
	}
	return s.toks[s.pos]
}

// Read consumes and returns the next token.
func (s *Stream) Read() Token {
	tok := s.Peek()
	if s.pos < len(s.toks) {
		s.pos++
	}
	return tok
}
