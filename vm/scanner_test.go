package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func scanAll(src string) []Token {
	s := NewScanner(src)
	var toks []Token
	for {
		tok := s.ScanToken()
		toks = append(toks, tok)
		if tok.Type == TEof {
			return toks
		}
	}
}

func TestScanNumbers(t *testing.T) {
	toks := scanAll("123 45.6 0.5")
	assert.Equal(t, []TokenType{TNumber, TNumber, TNumber, TEof}, typesOf(toks))
	assert.Equal(t, "123", toks[0].String())
	assert.Equal(t, "45.6", toks[1].String())
}

// TestTrailingDotIsNotPartOfANumber covers the "1." lexing edge case: a
// dot not followed by a digit is not consumed into the number.
func TestTrailingDotIsNotPartOfANumber(t *testing.T) {
	toks := scanAll("1.")
	assert.Equal(t, []TokenType{TNumber, TDot, TEof}, typesOf(toks))
	assert.Equal(t, "1", toks[0].String())
}

func TestScanOperatorsAndGrouping(t *testing.T) {
	toks := scanAll("(1 + -2) * 3 / 4")
	assert.Equal(t, []TokenType{
		TLeftParen, TNumber, TPlus, TMinus, TNumber, TRightParen,
		TStar, TNumber, TSlash, TNumber, TEof,
	}, typesOf(toks))
}

func TestScanTwoCharOperators(t *testing.T) {
	toks := scanAll("== != <= >= = < >")
	assert.Equal(t, []TokenType{
		TEqual, TBangEqual, TLessEqual, TGreaterEqual, TAssign, TLess, TGreater, TEof,
	}, typesOf(toks))
}

func TestScanKeywordsAndIdentifiers(t *testing.T) {
	toks := scanAll("true false nil fudge")
	assert.Equal(t, []TokenType{TTrue, TFalse, TNil, TIdentifier, TEof}, typesOf(toks))
}

func TestScanLineCounting(t *testing.T) {
	toks := scanAll("1\n+\n2")
	assert.Equal(t, 1, toks[0].Line)
	assert.Equal(t, 2, toks[1].Line)
	assert.Equal(t, 3, toks[2].Line)
}

func TestScanLineComment(t *testing.T) {
	toks := scanAll("1 // ignored\n2")
	assert.Equal(t, []TokenType{TNumber, TNumber, TEof}, typesOf(toks))
	assert.Equal(t, "1", toks[0].String())
	assert.Equal(t, "2", toks[1].String())
}

func TestScanUnterminatedString(t *testing.T) {
	toks := scanAll(`"abc`)
	assert.Equal(t, TErr, toks[0].Type)
	assert.Equal(t, "Unterminated string.", toks[0].String())
}

func TestScanString(t *testing.T) {
	toks := scanAll(`"hello world"`)
	assert.Equal(t, TString, toks[0].Type)
	assert.Equal(t, `"hello world"`, toks[0].String())
}

func TestScanUnexpectedCharacter(t *testing.T) {
	toks := scanAll("@")
	assert.Equal(t, TErr, toks[0].Type)
	assert.Equal(t, "Unexpected character.", toks[0].String())
}

// TestScanIsIdempotentAtEOF covers the Scanner's documented EOF
// idempotence: repeated calls past the end of input keep returning Eof.
func TestScanIsIdempotentAtEOF(t *testing.T) {
	s := NewScanner("1")
	s.ScanToken() // consumes "1"
	first := s.ScanToken()
	second := s.ScanToken()
	assert.Equal(t, TEof, first.Type)
	assert.Equal(t, TEof, second.Type)
}

func TestTokenEq(t *testing.T) {
	a := Token{Type: TNumber, Line: 1, Runes: []rune("1")}
	b := Token{Type: TNumber, Line: 2, Runes: []rune("1")}
	c := Token{Type: TNumber, Line: 1, Runes: []rune("2")}
	assert.True(t, a.Eq(b), "Eq ignores line")
	assert.False(t, a.Eq(c))
}

func typesOf(toks []Token) []TokenType {
	types := make([]TokenType, len(toks))
	for i, tok := range toks {
		types[i] = tok.Type
	}
	return types
}
