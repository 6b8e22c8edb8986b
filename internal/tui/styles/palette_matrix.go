package styles

// MatrixTheme is the green-on-black palette fitting the terminal fiction.
var MatrixTheme = Theme{
	Name:        "matrix",
	BorderStyle: "sharp",
	Base: BaseColors{
		Background: "16",
		Foreground: "40",
		Muted:      "22",
		Accent:     "46",
		Border:     "28",
	},
	Prompt: PromptColors{
		User:   "46",
		Host:   "46",
		Path:   "40",
		Symbol: "46",
	},
	Scrollback: ScrollbackColors{
		Command: "46",
		Output:  "40",
		Error:   "118",
		Banner:  "46",
	},
	Chrome: ChromeColors{
		Header:      "22",
		Footer:      "22",
		ActiveTab:   "46",
		InactiveTab: "28",
		Selected:    "46",
	},
}
