package styles

// Symbols holds the glyph set based on nerdfont configuration
type Symbols struct {
	Question string
	Success  string
	Error    string
	Warning  string
	Info     string
	Pointer  string
	Delim    string
}

// Default symbols (unicode, no nerd font required)
var defaultSymbols = Symbols{
	Question: "?",
	Success:  "✔",
	Error:    "✖",
	Warning:  "⚠",
	Info:     "ℹ",
	Pointer:  "❯",
	Delim:    "›",
}

// Nerd font symbols
var nerdfontSymbols = Symbols{
	Question: "", // nf-fa-question
	Success:  "", // nf-fa-check
	Error:    "", // nf-fa-close
	Warning:  "", // nf-fa-warning
	Info:     "", // nf-fa-info_circle
	Pointer:  "", // nf-fa-chevron_right
	Delim:    "›",
}

// useNerdfont tracks whether nerd font symbols are enabled
var useNerdfont bool

// currentSymbols holds the active symbol set
var currentSymbols = defaultSymbols

// SetNerdfont enables or disables nerd font symbols
func SetNerdfont(enabled bool) {
	useNerdfont = enabled
	if enabled {
		currentSymbols = nerdfontSymbols
	} else {
		currentSymbols = defaultSymbols
	}
}

// NerdfontEnabled returns whether nerd font symbols are enabled
func NerdfontEnabled() bool {
	return useNerdfont
}

// CurrentSymbols returns the current symbol set
func CurrentSymbols() Symbols {
	return currentSymbols
}

// QuestionSymbol returns the symbol shown before an open prompt
func QuestionSymbol() string {
	return currentSymbols.Question
}

// SuccessSymbol returns the symbol for submitted prompts and succeeded spinners
func SuccessSymbol() string {
	return currentSymbols.Success
}

// ErrorSymbol returns the symbol for aborted prompts and failed spinners
func ErrorSymbol() string {
	return currentSymbols.Error
}

// WarningSymbol returns the symbol for spinner warnings
func WarningSymbol() string {
	return currentSymbols.Warning
}

// InfoSymbol returns the symbol for informational spinner lines
func InfoSymbol() string {
	return currentSymbols.Info
}

// PointerSymbol returns the glyph prefixed to the highlighted choice
func PointerSymbol() string {
	return currentSymbols.Pointer
}

// DelimSymbol returns the delimiter between a prompt message and its value
func DelimSymbol() string {
	return currentSymbols.Delim
}
