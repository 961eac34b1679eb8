package css

import (
	"bytes"
	"errors"
	"io"
	"slices"
	"strconv"
	"strings"
	"unicode"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Parser parses CSS stylesheets and declaration blocks.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// Parse parses CSS text into a Stylesheet.
// The optional source parameter identifies what's being parsed (for debug logging).
func (p *Parser) Parse(data []byte, source ...string) *Stylesheet {
	sheet := &Stylesheet{
		Rules:    make([]Rule, 0),
		Warnings: make([]string, 0),
	}

	if len(source) > 0 && source[0] != "" {
		p.log.Debug("Parsing CSS", zap.String("source", source[0]), zap.Int("bytes", len(data)))
	}

	parser := css.NewParser(parse.NewInput(bytes.NewReader(data)), false)

	var selectors []string
	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			// End of input or error
			if err := parser.Err(); err != nil && !errors.Is(err, io.EOF) {
				p.log.Debug("CSS parse error", zap.Error(err))
			}
			return sheet

		case css.BeginAtRuleGrammar:
			atRule := string(data)
			sheet.Warnings = append(sheet.Warnings, "unsupported at-rule: "+atRule)
			p.skipAtRuleBlock(parser)
			p.log.Debug("Skipping @-rule", zap.String("rule", atRule))

		case css.AtRuleGrammar:
			// Simple @-rule without block (e.g., @import)
			atRule := string(data)
			sheet.Warnings = append(sheet.Warnings, "unsupported at-rule: "+atRule)
			p.log.Debug("Skipping @-rule", zap.String("rule", atRule))

		case css.QualifiedRuleGrammar:
			// member of a selector group, the last member opens the ruleset
			selectors = appendSelectors(selectors, data, parser.Values())

		case css.BeginRulesetGrammar:
			selectors = appendSelectors(selectors, data, parser.Values())
			decl := p.parseDeclarations(parser, true)
			for i, sel := range selectors {
				d := decl
				if i > 0 {
					d = decl.Clone()
				}
				sheet.Rules = append(sheet.Rules, Rule{Selector: sel, Declaration: d})
			}
			selectors = nil
		}
	}
}

// ParseDeclaration parses a declaration block without braces, the content of
// a style attribute for example.
func (p *Parser) ParseDeclaration(text string) *Declaration {
	parser := css.NewParser(parse.NewInputString(text), true)
	return p.parseDeclarations(parser, false)
}

// appendSelectors extracts selector strings from token data and adds ones we
// have not seen yet.
func appendSelectors(selectors []string, data []byte, values []css.Token) []string {
	var sb strings.Builder
	if d := string(data); d != "{" && d != "," {
		sb.WriteString(d)
	}
	for _, v := range values {
		sb.Write(v.Data)
	}

	// Split by comma for grouped selectors
	for s := range strings.SplitSeq(sb.String(), ",") {
		s = strings.Join(strings.Fields(s), " ")
		if s != "" && !slices.Contains(selectors, s) {
			selectors = append(selectors, s)
		}
	}
	return selectors
}

// parseDeclarations reads declarations until end of ruleset (or input for
// inline blocks).
func (p *Parser) parseDeclarations(parser *css.Parser, ruleset bool) *Declaration {
	decl := NewDeclaration()

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && !errors.Is(err, io.EOF) {
				p.log.Debug("CSS parse error", zap.Error(err))
			}
			return decl

		case css.EndRulesetGrammar:
			if ruleset {
				return decl
			}

		case css.DeclarationGrammar:
			name := strings.ToLower(string(data))
			val, important := p.parsePropertyValue(parser.Values())
			decl.Set(name, val, important)

		case css.CustomPropertyGrammar:
			// CSS custom properties (--var) are kept but never interpreted
			var sb strings.Builder
			for _, t := range parser.Values() {
				sb.Write(t.Data)
			}
			decl.Set(string(data), Value{Raw: strings.TrimSpace(sb.String()), Shape: ShapeCustom}, false)
		}
	}
}

// parsePropertyValue converts CSS tokens to a Value and reports trailing
// !important.
func (p *Parser) parsePropertyValue(tokens []css.Token) (Value, bool) {
	tokens, important := trimImportant(trimWhitespace(tokens))
	if len(tokens) == 0 {
		return Value{}, important
	}

	raw := rawText(tokens)
	items, custom := groupItems(tokens)

	switch {
	case custom || len(items) == 0:
		return Value{Raw: raw, Shape: ShapeCustom}, important
	case len(items) == 1:
		return items[0], important
	default:
		// tokenizer drops some whitespace, rebuild text from items
		raw = joinItems(items)
		return Value{Raw: raw, Keyword: raw, Shape: ShapeList, Items: items}, important
	}
}

func trimWhitespace(tokens []css.Token) []css.Token {
	for len(tokens) > 0 && tokens[0].TokenType == css.WhitespaceToken {
		tokens = tokens[1:]
	}
	for len(tokens) > 0 && tokens[len(tokens)-1].TokenType == css.WhitespaceToken {
		tokens = tokens[:len(tokens)-1]
	}
	return tokens
}

// trimImportant strips trailing "! important" and reports if it was present.
func trimImportant(tokens []css.Token) ([]css.Token, bool) {
	n := len(tokens)
	if n < 2 {
		return tokens, false
	}
	last := tokens[n-1]
	if last.TokenType != css.IdentToken || !strings.EqualFold(string(last.Data), "important") {
		return tokens, false
	}
	rest := trimWhitespace(tokens[:n-1])
	if len(rest) == 0 {
		return tokens, false
	}
	bang := rest[len(rest)-1]
	if bang.TokenType != css.DelimToken || string(bang.Data) != "!" {
		return tokens, false
	}
	return trimWhitespace(rest[:len(rest)-1]), true
}

// rawText builds value string collapsing whitespace runs to a single space.
func rawText(tokens []css.Token) string {
	var rawParts []string
	for _, t := range tokens {
		if t.TokenType != css.WhitespaceToken {
			rawParts = append(rawParts, string(t.Data))
		} else if len(rawParts) > 0 {
			// Add space between non-whitespace tokens
			rawParts = append(rawParts, " ")
		}
	}
	return strings.TrimSpace(strings.Join(rawParts, ""))
}

// groupItems splits value tokens into list items. Whitespace separates items,
// commas and slashes become delimiter items, function tokens are folded
// together with their arguments. Second return is true when value refers to
// custom properties and could not be interpreted.
func groupItems(tokens []css.Token) ([]Value, bool) {
	var items []Value
	for i := 0; i < len(tokens); i++ {
		t := tokens[i]
		switch t.TokenType {
		case css.WhitespaceToken, css.CommentToken:
			continue

		case css.CustomPropertyValueToken:
			return nil, true

		case css.CommaToken:
			items = append(items, Value{Raw: ",", Kind: KindDelim, Shape: ShapePrimitive})

		case css.DelimToken:
			items = append(items, Value{Raw: string(t.Data), Kind: KindDelim, Shape: ShapePrimitive})

		case css.FunctionToken:
			name := strings.ToLower(string(t.Data))
			if name == "var(" || name == "env(" {
				return nil, true
			}
			end := matchingParen(tokens, i)
			raw := rawText(tokens[i : end+1])
			items = append(items, Value{Raw: raw, Keyword: strings.ToLower(raw), Kind: KindFunction, Shape: ShapePrimitive})
			i = end

		default:
			items = append(items, primitiveFromToken(t))
		}
	}
	return items, false
}

// matchingParen returns index of the token closing the function opened at
// start (or last index when input is truncated).
func matchingParen(tokens []css.Token, start int) int {
	depth := 0
	for i := start; i < len(tokens); i++ {
		switch tokens[i].TokenType {
		case css.FunctionToken, css.LeftParenthesisToken:
			depth++
		case css.RightParenthesisToken:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return len(tokens) - 1
}

func primitiveFromToken(t css.Token) Value {
	data := string(t.Data)
	val := Value{Raw: data, Shape: ShapePrimitive}

	switch t.TokenType {
	case css.DimensionToken:
		val.Kind = KindDimension
		val.Value, val.Unit = parseDimension(data)
	case css.PercentageToken:
		val.Kind = KindPercentage
		val.Value, _ = strconv.ParseFloat(strings.TrimSuffix(data, "%"), 64)
		val.Unit = "%"
	case css.NumberToken:
		val.Kind = KindNumber
		val.Value, _ = strconv.ParseFloat(data, 64)
	case css.IdentToken:
		val.Kind = KindIdent
		val.Keyword = strings.ToLower(data)
	case css.StringToken:
		val.Kind = KindString
		val.Keyword = unquote(data)
	case css.HashToken:
		// Color value
		val.Kind = KindHash
		val.Keyword = strings.ToLower(data)
	case css.URLToken:
		val.Kind = KindURL
		s := strings.TrimSuffix(data[strings.IndexByte(data, '(')+1:], ")")
		val.Keyword = unquote(s)
	default:
		val.Kind = KindUnknown
		val.Keyword = data
	}
	return val
}

// parseDimension extracts numeric value and unit from dimension token.
func parseDimension(s string) (float64, string) {
	// Find where number ends
	numEnd := 0
	for i, r := range s {
		if unicode.IsDigit(r) || r == '.' || r == '-' || r == '+' {
			numEnd = i + 1
		} else {
			break
		}
	}

	if numEnd == 0 {
		return 0, ""
	}

	num, _ := strconv.ParseFloat(s[:numEnd], 64)
	unit := strings.ToLower(s[numEnd:])
	return num, unit
}

// skipAtRuleBlock skips tokens until the matching end of an @-rule block.
func (p *Parser) skipAtRuleBlock(parser *css.Parser) {
	depth := 1
	for depth > 0 {
		gt, _, _ := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			return
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			depth--
		}
	}
}

// unquote removes surrounding quotes from a string.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return s
	}
	if (s[0] == '"' && s[len(s)-1] == '"') ||
		(s[0] == '\'' && s[len(s)-1] == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}
