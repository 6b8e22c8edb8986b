package styles

// DefaultTheme is the baseline dark palette.
var DefaultTheme = Theme{
	Name:        "default",
	BorderStyle: "rounded",
	Base: BaseColors{
		Background: "234",
		Foreground: "252",
		Muted:      "245",
		Accent:     "75",
		Border:     "240",
	},
	Prompt: PromptColors{
		User:   "114",
		Host:   "81",
		Path:   "147",
		Symbol: "252",
	},
	Scrollback: ScrollbackColors{
		Command: "252",
		Output:  "249",
		Error:   "203",
		Banner:  "214",
	},
	Chrome: ChromeColors{
		Header:      "111",
		Footer:      "110",
		ActiveTab:   "75",
		InactiveTab: "245",
		Selected:    "75",
	},
}
