// Package language resolves language aliases to the identifiers the
// Pastery service understands.
package language

// Autodetect is the sentinel tag that tells the service to infer the
// language from the paste contents.
const Autodetect = "autodetect"

// registry maps every accepted alias to its canonical tag. Canonical tags
// map to themselves. Lookup is case-sensitive; anything not listed here
// resolves to Autodetect.
var registry = map[string]string{
	Autodetect: Autodetect,

	"abap":         "abap",
	"apacheconf":   "apacheconf",
	"applescript":  "applescript",
	"arduino":      "arduino",
	"awk":          "awk",
	"bash":         "bash",
	"bat":          "bat",
	"c":            "c",
	"clojure":      "clojure",
	"cmake":        "cmake",
	"coffeescript": "coffeescript",
	"common-lisp":  "common-lisp",
	"console":      "console",
	"cpp":          "cpp",
	"csharp":       "csharp",
	"css":          "css",
	"cuda":         "cuda",
	"dart":         "dart",
	"delphi":       "delphi",
	"diff":         "diff",
	"django":       "django",
	"docker":       "docker",
	"elixir":       "elixir",
	"erlang":       "erlang",
	"fortran":      "fortran",
	"fsharp":       "fsharp",
	"gdscript":     "gdscript",
	"go":           "go",
	"groovy":       "groovy",
	"haml":         "haml",
	"handlebars":   "handlebars",
	"haskell":      "haskell",
	"html":         "html",
	"ini":          "ini",
	"java":         "java",
	"js":           "js",
	"json":         "json",
	"jsx":          "jsx",
	"kotlin":       "kotlin",
	"less":         "less",
	"llvm":         "llvm",
	"lua":          "lua",
	"make":         "make",
	"markdown":     "markdown",
	"matlab":       "matlab",
	"nasm":         "nasm",
	"nginx":        "nginx",
	"nim":          "nim",
	"objective-c":  "objective-c",
	"ocaml":        "ocaml",
	"perl":         "perl",
	"php":          "php",
	"postgresql":   "postgresql",
	"powershell":   "powershell",
	"puppet":       "puppet",
	"python":       "python",
	"qml":          "qml",
	"r":            "r",
	"rst":          "rst",
	"ruby":         "ruby",
	"rust":         "rust",
	"sass":         "sass",
	"scala":        "scala",
	"scheme":       "scheme",
	"scss":         "scss",
	"smalltalk":    "smalltalk",
	"sql":          "sql",
	"swift":        "swift",
	"tcl":          "tcl",
	"tex":          "tex",
	"text":         "text",
	"toml":         "toml",
	"ts":           "ts",
	"vala":         "vala",
	"vbnet":        "vbnet",
	"verilog":      "verilog",
	"vhdl":         "vhdl",
	"vim":          "vim",
	"xml":          "xml",
	"yaml":         "yaml",

	// common aliases
	"c#":         "csharp",
	"c++":        "cpp",
	"dockerfile": "docker",
	"golang":     "go",
	"javascript": "js",
	"latex":      "tex",
	"makefile":   "make",
	"md":         "markdown",
	"objc":       "objective-c",
	"plaintext":  "text",
	"postgres":   "postgresql",
	"py":         "python",
	"python3":    "python",
	"rb":         "ruby",
	"sh":         "bash",
	"shell":      "bash",
	"typescript": "ts",
	"yml":        "yaml",
}

// Resolve maps an alias to its canonical language tag. Unknown aliases,
// including the empty string, resolve to Autodetect rather than failing;
// the service does its own detection in that case.
func Resolve(alias string) string {
	if tag, ok := registry[alias]; ok {
		return tag
	}
	return Autodetect
}
