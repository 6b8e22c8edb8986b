package styles

// HighContrastTheme maximizes foreground/background separation for
// accessibility and bright ambient light.
var HighContrastTheme = Theme{
	Name:        "high-contrast",
	BorderStyle: "sharp",
	Base: BaseColors{
		Background: "16",
		Foreground: "231",
		Muted:      "250",
		Accent:     "226",
		Border:     "231",
	},
	Prompt: PromptColors{
		User:   "46",
		Host:   "51",
		Path:   "226",
		Symbol: "231",
	},
	Scrollback: ScrollbackColors{
		Command: "231",
		Output:  "254",
		Error:   "196",
		Banner:  "226",
	},
	Chrome: ChromeColors{
		Header:      "21",
		Footer:      "21",
		ActiveTab:   "226",
		InactiveTab: "250",
		Selected:    "226",
	},
}
