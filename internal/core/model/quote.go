package model

// Quote is a single inspirational quote.
type Quote struct {
	Text   string `json:"text" yaml:"text"`
	Author string `json:"author" yaml:"author"`
}

// FallbackQuote is shown when no quote list can be read.
var FallbackQuote = Quote{
	Text:   "Focus on the present moment.",
	Author: "Stoic Wisdom",
}
