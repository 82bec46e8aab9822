package gocalc

import "strings"

const eof = -1

// scanner walks the input one byte at a time.
type scanner struct {
	src string
	off int
}

func newScanner(s string) *scanner {
	return &scanner{
		src: strings.Replace(s, " ", "", -1),
	}
}

func (s *scanner) current() int {
	if s.off >= len(s.src) {
		return eof
	}
	return int(s.src[s.off])
}

func (s *scanner) advance() {
	s.off++
}

func (s *scanner) pos() int {
	return s.off
}

func isDigit(c int) bool {
	return '0' <= c && c <= '9'
}
