package lexicon

// Null represents "no character". It satisfies none of the positive
// predicates of this package.
const Null rune = '\u0000'

const (
	baselinePunctuationMarks = ".?!:;,"
	meanlinePunctuationMarks = "'\"“”`´’"

	// f may descend when italic, i when part of an fi ligature.
	descenders = "gjpqyfiQJ"
	ascenders  = "bdfhijkltβ"

	baselineCharacters = "ABCDEFGHIKLMNOPRSTUVWXYZabcdefhiklmnorstuvwxz1234567890"
	meanlineCharacters = "acegmnopqrsuvwxyz"

	// hyphen-minus and en dash; the em dash is a dash, not a hyphen.
	hyphens = "-–"
)

// mathOperators are tokens that are written surrounded by white space.
var mathOperators = map[string]struct{}{
	"+": {}, "-": {}, "−": {}, "±": {}, "∓": {}, "×": {}, "⋅": {}, "·": {},
	"÷": {}, "/": {}, "⁄": {}, "∴": {}, "∵": {}, "∞": {},

	"=": {}, "≠": {}, "≈": {}, "~": {}, "≡": {}, "≜": {}, "≝": {}, "≐": {},
	"≅": {}, "⇔": {}, "↔": {},

	"<": {}, ">": {}, "≪": {}, "≫": {}, "≤": {}, "≥": {}, "≦": {}, "≧": {},
	"≺": {}, "≻": {}, "◅": {}, "▻": {}, "⇒": {}, "→": {}, "⊃": {}, "⊆": {},
	"⊂": {}, "⊇": {}, "↦": {}, "⊧": {}, "⊢": {},

	"*": {}, "∝": {}, "∖": {}, "∤": {}, "∥": {}, "∦": {}, "⋕": {}, "#": {},
	"≀": {}, "↯": {}, "※": {}, "⊕": {}, "⊻": {}, "□": {}, "•": {},

	"⊤": {}, "⊥": {}, "∪": {}, "∩": {}, "∨": {}, "∧": {}, "⊗": {}, "⋉": {},
	"⋊": {}, "⋈": {},

	"sin": {}, "cos": {}, "tan": {}, "exp": {}, "log": {}, "ln": {}, "sec": {},
	"csc": {}, "cot": {}, "arcsin": {}, "arccos": {}, "arctan": {},
	"arcsec": {}, "arccsc": {}, "arccot": {}, "sinh": {}, "cosh": {},
	"tanh": {}, "coth": {}, "mod": {}, "min": {}, "max": {}, "inf": {},
	"sup": {}, "lim": {}, "lim inf": {}, "lim sup": {}, "arg": {}, "sgn": {},
	"deg": {}, "dim": {}, "hom": {}, "ker": {}, "gcd": {}, "det": {}, "Pr": {},
}

// mathSymbols are symbols that appear inside formulas.
var mathSymbols = map[string]struct{}{
	"√": {}, "∑": {}, "∫": {}, "∮": {}, "¬": {}, "˜": {}, "∝": {}, "■": {},
	"□": {}, "∎": {}, "▮": {}, "‣": {},
	"0": {}, "1": {}, "2": {}, "3": {}, "4": {}, "5": {}, "6": {}, "7": {},
	"8": {}, "9": {},

	"{": {}, "}": {}, "⌊": {}, "⌋": {}, "⌈": {}, "⌉": {}, "[": {}, "]": {},
	"(": {}, ")": {}, "⟨": {}, "⟩": {}, "|": {},

	"∀": {}, "ℂ": {}, "𝔠": {}, "∂": {}, "𝔼": {}, "∃": {}, "∈": {}, "∉": {},
	"∋": {}, "ℍ": {}, "ℕ": {}, "∘": {}, "ℙ": {}, "ℚ": {}, "ǫ": {}, "ℝ": {},
	"†": {}, "ℤ": {},

	"α": {}, "β": {}, "γ": {}, "Δ": {}, "δ": {}, "ε": {}, "η": {}, "λ": {},
	"μ": {}, "π": {}, "ρ": {}, "σ": {}, "Σ": {}, "τ": {}, "φ": {}, "χ": {},
	"Φ": {}, "ω": {}, "Ω": {},
}
