package ui

// Link is a labelled URL shown as a button under the terminal output.
type Link struct {
	Label string
	URL   string
}

// Profile is the text shown by the terminal card.
type Profile struct {
	Title   string
	Command string
	Lines   []string
	Links   []Link
}

// DefaultProfile returns the landing page card.
func DefaultProfile() Profile {
	return Profile{
		Title:   "fish",
		Command: "$ whoami",
		Lines: []string{
			"Collin Pfeifer",
			"Typescript, Python, Go",
			"Infra @ OmniSOC",
		},
		Links: []Link{
			{Label: "GitHub", URL: "https://github.com/aspectrr"},
			{Label: "LinkedIn", URL: "https://www.linkedin.com/in/collin-pfeifer/"},
		},
	}
}
