// Package rewrite is the token-aware text-rewriting engine: a single-pass
// state machine over a text span that applies the configured spacing policy
// around punctuation and operators while never touching the inside of string
// literals or comments.
//
// Назначение: посимвольное применение пробельных политик и обрезка хвостовых
// пробелов. Не делает: никакого знания о секциях и заменах.
// Зависимости: internal/options.
package rewrite

import (
	"pasfmt/internal/options"
)

type state uint8

const (
	stateCode state = iota
	stateString
	stateLineComment
	stateBraceComment
	stateParenStar
)

type scanner struct {
	src       string
	opts      *options.Options
	out       []byte
	lineStart int // позиция начала текущей строки в out
	prev      byte
	state     state
}

// Rewrite returns src with the spacing policy applied inside code and
// trailing whitespace trimmed per physical line. The function is pure and
// idempotent: rewriting its own output changes nothing. The slice start is
// treated as a line start.
func Rewrite(src string, opts *options.Options) string {
	return RewriteFrom(0, src, opts)
}

// RewriteFrom rewrites a slice cut out of a larger text. prev is the byte
// immediately preceding the slice, or 0 when the slice opens the text; it
// decides whether offset 0 sits at a line start, so spacing around an
// operator on the slice boundary does not depend on where the cut fell.
func RewriteFrom(prev byte, src string, opts *options.Options) string {
	sc := &scanner{
		src:  src,
		opts: opts,
		out:  make([]byte, 0, len(src)+len(src)/8),
		prev: prev,
	}
	sc.run()
	return string(sc.out)
}

func (sc *scanner) run() {
	i := 0
	for i < len(sc.src) {
		c := sc.src[i]

		// Переводы строк обрабатываются единообразно во всех состояниях:
		// trim хвостовых пробелов действует и внутри комментариев, и в
		// незакрытых строковых литералах.
		if c == '\n' || c == '\r' {
			sc.trimLine()
			sc.out = append(sc.out, c)
			sc.lineStart = len(sc.out)
			switch sc.state {
			case stateLineComment:
				sc.state = stateCode
			case stateString:
				// незакрытый литерал принудительно закрывается —
				// выбор живучести, а не синтаксическая ошибка
				sc.state = stateCode
			}
			i++
			continue
		}

		switch sc.state {
		case stateString:
			i = sc.stringChar(i)
		case stateLineComment:
			sc.out = append(sc.out, c)
			i++
		case stateBraceComment:
			sc.out = append(sc.out, c)
			if c == '}' {
				sc.state = stateCode
			}
			i++
		case stateParenStar:
			if c == '*' && i+1 < len(sc.src) && sc.src[i+1] == ')' {
				sc.out = append(sc.out, '*', ')')
				sc.state = stateCode
				i += 2
				continue
			}
			sc.out = append(sc.out, c)
			i++
		default:
			i = sc.codeChar(i)
		}
	}

	sc.trimLine()
}

func (sc *scanner) stringChar(i int) int {
	c := sc.src[i]
	if c != '\'' {
		sc.out = append(sc.out, c)
		return i + 1
	}
	if i+1 < len(sc.src) && sc.src[i+1] == '\'' {
		// '' — экранированная кавычка, литерал продолжается
		sc.out = append(sc.out, '\'', '\'')
		return i + 2
	}
	sc.out = append(sc.out, '\'')
	sc.state = stateCode
	return i + 1
}

func (sc *scanner) codeChar(i int) int {
	c := sc.src[i]

	switch {
	case c == '\'':
		sc.out = append(sc.out, c)
		sc.state = stateString
		return i + 1
	case c == '/' && i+1 < len(sc.src) && sc.src[i+1] == '/':
		sc.out = append(sc.out, '/', '/')
		sc.state = stateLineComment
		return i + 2
	case c == '{':
		sc.out = append(sc.out, c)
		sc.state = stateBraceComment
		return i + 1
	case c == '(' && i+1 < len(sc.src) && sc.src[i+1] == '*':
		sc.out = append(sc.out, '(', '*')
		sc.state = stateParenStar
		return i + 2
	}

	if op, class, ok := matchOperator(sc.src, i); ok {
		return sc.operator(i, op, class)
	}

	sc.out = append(sc.out, c)
	return i + 1
}

// operator applies the configured policy around the operator at i.
func (sc *scanner) operator(i int, op string, class options.OperatorClass) int {
	// числовое исключение: 12:34:56 остаётся как есть
	prevByte := sc.prev
	if i > 0 {
		prevByte = sc.src[i-1]
	}
	if class == options.ClassColon && sc.opts.ColonNumericException &&
		isDigit(prevByte) &&
		i+1 < len(sc.src) && isDigit(sc.src[i+1]) {
		sc.out = append(sc.out, ':')
		return i + 1
	}

	policy := sc.opts.Spacing.Get(class)
	if policy == options.NoChange {
		sc.out = append(sc.out, op...)
		return i + len(op)
	}

	insertBefore, insertAfter := policy.Insertions()

	// Узкое исключение для ",;": пробел, поставленный после запятой по её
	// политике, не срезается перед точкой с запятой. Не обобщать на другие
	// пары операторов.
	keepCommaSpace := false
	if op == ";" && len(sc.out) >= 2 &&
		sc.out[len(sc.out)-1] == ' ' && sc.out[len(sc.out)-2] == ',' {
		_, commaAfter := sc.opts.Spacing.Get(options.ClassComma).Insertions()
		keepCommaSpace = commaAfter
	}

	// Сторона "до": убрать горизонтальные пробелы, затем ровно один пробел,
	// если политика этого требует. Оператор, стоящий первым на строке,
	// сохраняет отступ: он и есть выбранная раскладка, а не лишний пробел.
	j := len(sc.out)
	for j > sc.lineStart && (sc.out[j-1] == ' ' || sc.out[j-1] == '\t') {
		j--
	}
	atLineStart := j == sc.lineStart &&
		(sc.lineStart > 0 || sc.prev == 0 || sc.prev == '\n' || sc.prev == '\r')
	if !keepCommaSpace && !atLineStart {
		sc.out = sc.out[:j]
		last := sc.prev
		if len(sc.out) > 0 {
			last = sc.out[len(sc.out)-1]
		}
		if insertBefore &&
			last != '\n' && last != '\r' && last != ' ' && last != '\t' && last != op[0] {
			sc.out = append(sc.out, ' ')
		}
	}

	sc.out = append(sc.out, op...)

	// сторона "после": поглотить горизонтальные пробелы, затем ровно один
	// пробел, если дальше есть содержимое и это не повтор оператора (",,", "++")
	next := i + len(op)
	for next < len(sc.src) && (sc.src[next] == ' ' || sc.src[next] == '\t') {
		next++
	}
	if insertAfter && next < len(sc.src) {
		nc := sc.src[next]
		if nc != '\n' && nc != '\r' && nc != op[len(op)-1] {
			sc.out = append(sc.out, ' ')
		}
	}
	return next
}

func (sc *scanner) trimLine() {
	if !sc.opts.TrimTrailingWhitespace {
		return
	}
	j := len(sc.out)
	for j > sc.lineStart && (sc.out[j-1] == ' ' || sc.out[j-1] == '\t') {
		j--
	}
	sc.out = sc.out[:j]
}

// matchOperator recognizes the operator starting at i with longest-match
// precedence: two-character operators win over their single-character prefix.
func matchOperator(src string, i int) (string, options.OperatorClass, bool) {
	if i+1 < len(src) {
		switch src[i : i+2] {
		case ":=":
			return ":=", options.ClassAssignment, true
		case "+=", "-=", "*=", "/=":
			return src[i : i+2], options.ClassCompoundAssign, true
		case "<=", ">=", "<>":
			return src[i : i+2], options.ClassRelational, true
		}
	}
	switch src[i] {
	case ',':
		return ",", options.ClassComma, true
	case ';':
		return ";", options.ClassSemicolon, true
	case ':':
		return ":", options.ClassColon, true
	case '+', '-', '*', '/':
		return src[i : i+1], options.ClassArithmetic, true
	case '=', '<', '>':
		return src[i : i+1], options.ClassRelational, true
	default:
		return "", 0, false
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
